// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/json"
	"time"

	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/repository"
	"servicehub/internal/domain/service"
	"servicehub/internal/errors"

	"github.com/google/uuid"
)

// fanoutEvent is one lifecycle side effect addressed to a single recipient.
type fanoutEvent struct {
	Type      string // Lifecycle event type, e.g. "order.accepted".
	Kind      entity.EntityKind
	Actor     entity.Party
	Recipient entity.Party
	Related   entity.EntityRef
	Message   string
	Email     entity.EmailJob // To is filled from the recipient.
}

// emitFanout writes the notification, the email job and the lifecycle event through
// the repositories of the caller's transaction, so they commit or roll back with the
// state change that produced them.
func emitFanout(ctx context.Context, repos repository.RepositoryFactory, event fanoutEvent, now time.Time) error {
	notification := &entity.Notification{
		Message:    event.Message,
		SentBy:     event.Actor.Ref(),
		ReceivedBy: event.Recipient.Ref(),
		Related:    event.Related,
		CreatedAt:  now,
	}
	if err := repos.NewNotificationRepository().Create(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	job := event.Email
	job.To = event.Recipient.ContactEmail()

	emailEvent, err := newOutboxEvent(entity.OutboxTopicEmail, job, now)
	if err != nil {
		return err
	}

	lifecycleEvent, err := newOutboxEvent(entity.OutboxTopicLifecycle, entity.LifecycleEvent{
		EventID:    uuid.New(),
		Type:       event.Type,
		Entity:     event.Related,
		Actor:      event.Actor.Ref(),
		Recipient:  event.Recipient.Ref(),
		OccurredAt: now,
	}, now)
	if err != nil {
		return err
	}

	if err := repos.NewOutboxRepository().Enqueue(ctx, emailEvent, lifecycleEvent); err != nil {
		return errors.Wrap(err, "failed to enqueue fanout events")
	}

	return nil
}

// enqueueEmail queues a single email without a notification, used for account mail.
func enqueueEmail(ctx context.Context, outbox repository.OutboxRepository, job entity.EmailJob, now time.Time) error {
	event, err := newOutboxEvent(entity.OutboxTopicEmail, job, now)
	if err != nil {
		return err
	}

	return errors.Wrap(outbox.Enqueue(ctx, event), "failed to enqueue email")
}

func newOutboxEvent(topic entity.OutboxTopic, payload any, now time.Time) (*entity.OutboxEvent, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s payload", topic)
	}

	return &entity.OutboxEvent{
		ID:          uuid.New(),
		Topic:       topic,
		Payload:     raw,
		Status:      entity.OutboxStatusPending,
		AvailableAt: now,
		CreatedAt:   now,
	}, nil
}

// recordFanout counts a committed fanout.
func recordFanout(metrics service.Metrics, kind entity.EntityKind) {
	metrics.Fanout(string(kind))
}

// noopMetrics is used when no recorder is wired.
type noopMetrics struct{}

func (noopMetrics) OrderTransition(string)  {}
func (noopMetrics) Fanout(string)           {}
func (noopMetrics) Dispatch(string, string) {}
func (noopMetrics) BatchSize(int)           {}

func metricsOrNoop(metrics service.Metrics) service.Metrics {
	if metrics == nil {
		return noopMetrics{}
	}

	return metrics
}

// nowUTC is the clock of every service in this package.
func nowUTC() time.Time {
	return time.Now().UTC()
}
