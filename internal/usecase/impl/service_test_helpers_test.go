package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"

	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/repository"
	mockRepo "servicehub/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx makes the transaction manager run the body against a fresh factory and
// return the body's error.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

// capturedFanout keeps what a transaction wrote to the notification and outbox repositories.
type capturedFanout struct {
	notifications []*entity.Notification
	events        []*entity.OutboxEvent
}

// expectFanout wires notification and outbox repositories into the factory and records writes.
func expectFanout(t *testing.T, factory *mockRepo.MockRepositoryFactory) *capturedFanout {
	t.Helper()

	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	outboxRepo := mockRepo.NewMockOutboxRepository(t)
	factory.EXPECT().NewNotificationRepository().Return(notificationRepo)
	factory.EXPECT().NewOutboxRepository().Return(outboxRepo)

	captured := &capturedFanout{}
	notificationRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			captured.notifications = append(captured.notifications, notification)
		}).
		Return(nil)
	outboxRepo.EXPECT().
		Enqueue(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, events ...*entity.OutboxEvent) {
			captured.events = append(captured.events, events...)
		}).
		Return(nil)

	return captured
}

func (c *capturedFanout) emailJob(t *testing.T) entity.EmailJob {
	t.Helper()

	var jobs []entity.EmailJob
	for _, event := range c.events {
		if event.Topic != entity.OutboxTopicEmail {
			continue
		}
		var job entity.EmailJob
		require.NoError(t, json.Unmarshal(event.Payload, &job))
		jobs = append(jobs, job)
	}
	require.Len(t, jobs, 1)

	return jobs[0]
}

func (c *capturedFanout) lifecycleEvent(t *testing.T) entity.LifecycleEvent {
	t.Helper()

	var events []entity.LifecycleEvent
	for _, event := range c.events {
		if event.Topic != entity.OutboxTopicLifecycle {
			continue
		}
		var lifecycle entity.LifecycleEvent
		require.NoError(t, json.Unmarshal(event.Payload, &lifecycle))
		events = append(events, lifecycle)
	}
	require.Len(t, events, 1)

	return events[0]
}

// recordingMetrics counts calls instead of exporting them.
type recordingMetrics struct {
	mu          sync.Mutex
	transitions []string
	fanouts     []string
	dispatches  []string
	batchSizes  []int
}

func (m *recordingMetrics) OrderTransition(action string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitions = append(m.transitions, action)
}

func (m *recordingMetrics) Fanout(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fanouts = append(m.fanouts, kind)
}

func (m *recordingMetrics) Dispatch(topic, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dispatches = append(m.dispatches, topic+":"+result)
}

func (m *recordingMetrics) BatchSize(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batchSizes = append(m.batchSizes, n)
}

func newAccount(role entity.Role, name string) *entity.Account {
	return &entity.Account{
		ID:    uuid.New(),
		Role:  role,
		Name:  name,
		Email: name + "@example.com",
	}
}
