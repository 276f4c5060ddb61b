package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"servicehub/config"
	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/service"
	mockRepo "servicehub/internal/mocks/repository"
	mockSvc "servicehub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type dispatchMetrics struct {
	mu         sync.Mutex
	dispatches []string
	batchSizes []int
}

func (m *dispatchMetrics) OrderTransition(string) {}
func (m *dispatchMetrics) Fanout(string)          {}

func (m *dispatchMetrics) Dispatch(topic, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dispatches = append(m.dispatches, topic+":"+result)
}

func (m *dispatchMetrics) BatchSize(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batchSizes = append(m.batchSizes, n)
}

type relayFixtures struct {
	relay     *Relay
	outbox    *mockRepo.MockOutboxRepository
	mailer    *mockSvc.MockMailer
	renderer  *mockSvc.MockEmailRenderer
	publisher *mockSvc.MockEventPublisher
	metrics   *dispatchMetrics
}

func createTestRelay(t *testing.T) relayFixtures {
	fx := relayFixtures{
		outbox:    mockRepo.NewMockOutboxRepository(t),
		mailer:    mockSvc.NewMockMailer(t),
		renderer:  mockSvc.NewMockEmailRenderer(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		metrics:   &dispatchMetrics{},
	}

	fx.relay = NewRelay(RelayParams{
		Config: &config.Config{Outbox: &config.OutboxConfig{
			BatchSize:    10,
			PollInterval: 10 * time.Millisecond,
			MaxAttempts:  3,
			BaseBackoff:  time.Second,
			MaxBackoff:   time.Minute,
		}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Outbox:    fx.outbox,
		Mailer:    fx.mailer,
		Renderer:  fx.renderer,
		Publisher: fx.publisher,
		Metrics:   fx.metrics,
	})
	fx.relay.now = func() time.Time { return fixedNow }
	fx.relay.jitter = func(time.Duration) time.Duration { return 0 }

	return fx
}

func outboxEvent(t *testing.T, topic entity.OutboxTopic, payload any, attempts int) *entity.OutboxEvent {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	return &entity.OutboxEvent{
		ID:       uuid.New(),
		Topic:    topic,
		Payload:  raw,
		Status:   entity.OutboxStatusPending,
		Attempts: attempts,
	}
}

func TestRelay_RunOnce_SendsEmail(t *testing.T) {
	fx := createTestRelay(t)
	ctx := context.Background()

	job := entity.EmailJob{To: "carl@example.com", Subject: "Order Information", Template: entity.EmailTemplateOrder}
	event := outboxEvent(t, entity.OutboxTopicEmail, job, 0)
	message := service.EmailMessage{To: job.To, Subject: job.Subject, HTMLBody: "<p>hi</p>"}

	fx.outbox.EXPECT().ClaimDue(ctx, fixedNow, 10, claimLease).Return([]*entity.OutboxEvent{event}, nil)
	fx.renderer.EXPECT().Render(job).Return(message, nil)
	fx.mailer.EXPECT().Send(mock.Anything, message).Return(nil)
	fx.outbox.EXPECT().MarkDispatched(mock.Anything, event.ID, fixedNow).Return(nil)

	n, err := fx.relay.RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"email.send:ok"}, fx.metrics.dispatches)
	assert.Equal(t, []int{1}, fx.metrics.batchSizes)
}

func TestRelay_RunOnce_PublishesLifecycleEvent(t *testing.T) {
	fx := createTestRelay(t)
	ctx := context.Background()

	lifecycleEvent := entity.LifecycleEvent{
		EventID: uuid.New(),
		Type:    "order.accepted",
		Entity:  entity.EntityRef{Kind: entity.EntityKindOrder, ID: uuid.New()},
	}
	event := outboxEvent(t, entity.OutboxTopicLifecycle, lifecycleEvent, 0)

	fx.outbox.EXPECT().ClaimDue(ctx, fixedNow, 10, claimLease).Return([]*entity.OutboxEvent{event}, nil)
	fx.publisher.EXPECT().
		PublishLifecycleEvent(mock.Anything, mock.MatchedBy(func(e *entity.LifecycleEvent) bool {
			return e.EventID == lifecycleEvent.EventID && e.Type == "order.accepted"
		})).
		Return(nil)
	fx.outbox.EXPECT().MarkDispatched(mock.Anything, event.ID, fixedNow).Return(nil)

	_, err := fx.relay.RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"lifecycle.event:ok"}, fx.metrics.dispatches)
}

func TestRelay_RunOnce_RetriesWithBackoff(t *testing.T) {
	fx := createTestRelay(t)
	ctx := context.Background()

	job := entity.EmailJob{To: "vera@example.com"}
	event := outboxEvent(t, entity.OutboxTopicEmail, job, 1)

	fx.outbox.EXPECT().ClaimDue(ctx, fixedNow, 10, claimLease).Return([]*entity.OutboxEvent{event}, nil)
	fx.renderer.EXPECT().Render(job).Return(service.EmailMessage{To: job.To}, nil)
	fx.mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("connection refused"))
	fx.outbox.EXPECT().
		MarkFailed(mock.Anything, event.ID, mock.AnythingOfType("string"), fixedNow.Add(2*time.Second), false).
		Return(nil)

	_, err := fx.relay.RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"email.send:retry"}, fx.metrics.dispatches)
}

func TestRelay_RunOnce_DeadLettersAfterMaxAttempts(t *testing.T) {
	fx := createTestRelay(t)
	ctx := context.Background()

	lifecycleEvent := entity.LifecycleEvent{EventID: uuid.New(), Type: "refund.approved"}
	event := outboxEvent(t, entity.OutboxTopicLifecycle, lifecycleEvent, 2)

	fx.outbox.EXPECT().ClaimDue(ctx, fixedNow, 10, claimLease).Return([]*entity.OutboxEvent{event}, nil)
	fx.publisher.EXPECT().PublishLifecycleEvent(mock.Anything, mock.Anything).Return(errors.New("unavailable"))
	fx.outbox.EXPECT().MarkFailed(mock.Anything, event.ID, mock.Anything, mock.Anything, true).Return(nil)

	_, err := fx.relay.RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"lifecycle.event:dead"}, fx.metrics.dispatches)
}

func TestRelay_RunOnce_MalformedPayloadIsDead(t *testing.T) {
	fx := createTestRelay(t)
	ctx := context.Background()

	event := &entity.OutboxEvent{ID: uuid.New(), Topic: entity.OutboxTopicEmail, Payload: json.RawMessage(`{"to":`)}

	fx.outbox.EXPECT().ClaimDue(ctx, fixedNow, 10, claimLease).Return([]*entity.OutboxEvent{event}, nil)
	fx.outbox.EXPECT().MarkFailed(mock.Anything, event.ID, mock.Anything, mock.Anything, true).Return(nil)

	_, err := fx.relay.RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"email.send:dead"}, fx.metrics.dispatches)
}

func TestRelay_RunOnce_ClaimFailure(t *testing.T) {
	fx := createTestRelay(t)
	ctx := context.Background()
	claimErr := errors.New("database is down")

	fx.outbox.EXPECT().ClaimDue(ctx, fixedNow, 10, claimLease).Return(nil, claimErr)

	_, err := fx.relay.RunOnce(ctx)

	assert.ErrorIs(t, err, claimErr)
	assert.Empty(t, fx.metrics.batchSizes)
}

func TestRelay_Backoff(t *testing.T) {
	fx := createTestRelay(t)

	tests := []struct {
		attempts int
		want     time.Duration
	}{
		{attempts: 0, want: time.Second},
		{attempts: 1, want: 2 * time.Second},
		{attempts: 3, want: 8 * time.Second},
		{attempts: 20, want: time.Minute},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fx.relay.backoff(tt.attempts), "attempts=%d", tt.attempts)
	}

	fx.relay.jitter = func(limit time.Duration) time.Duration { return limit }
	assert.Equal(t, 3*time.Second, fx.relay.backoff(1))
	assert.Equal(t, time.Minute, fx.relay.backoff(6))
}

func TestRelay_ServeStopsOnLifecycleStop(t *testing.T) {
	fx := createTestRelay(t)

	fx.outbox.EXPECT().ClaimDue(mock.Anything, fixedNow, 10, claimLease).Return(nil, nil)

	served := make(chan error, 1)
	go func() {
		served <- fx.relay.Serve(context.Background())
	}()

	require.Eventually(t, fx.relay.running.Load, time.Second, 5*time.Millisecond)

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, fx.relay.stop(stopCtx))
	require.NoError(t, <-served)
}
