package postgres

import (
	"context"
	"time"

	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/repository"
	"servicehub/internal/errors"
	"servicehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// outboxRepository implements the repository.OutboxRepository interface.
type outboxRepository struct {
	db *gorm.DB
}

// NewOutboxRepository is the constructor for outboxRepository.
func NewOutboxRepository(db *gorm.DB) repository.OutboxRepository {
	return &outboxRepository{db: db}
}

// Enqueue persists pending events in one statement.
func (repo *outboxRepository) Enqueue(ctx context.Context, events ...*entity.OutboxEvent) error {
	if len(events) == 0 {
		return nil
	}

	now := time.Now()
	eventModels := make([]*model.OutboxEventModel, 0, len(events))
	for _, event := range events {
		eventM := fromOutboxDomain(event)
		eventM.Status = string(entity.OutboxStatusPending)
		if eventM.AvailableAt.IsZero() {
			eventM.AvailableAt = now
		}
		eventModels = append(eventModels, eventM)
	}

	if err := repo.db.WithContext(ctx).Create(&eventModels).Error; err != nil {
		return errors.Wrap(err, "failed to enqueue outbox events")
	}

	for i, eventM := range eventModels {
		*events[i] = *toOutboxDomain(eventM)
	}

	return nil
}

// ClaimDue selects due events and leases them in one transaction. On PostgreSQL the
// rows are locked with SKIP LOCKED so parallel relays claim disjoint batches.
func (repo *outboxRepository) ClaimDue(ctx context.Context, now time.Time, limit int, lease time.Duration) ([]*entity.OutboxEvent, error) {
	var eventModels []*model.OutboxEventModel

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Where("status = ? AND available_at <= ?", string(entity.OutboxStatusPending), now).
			Order("available_at ASC").
			Order("created_at ASC").
			Limit(limit)
		if tx.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"})
		}

		if err := query.Find(&eventModels).Error; err != nil {
			return errors.Wrap(err, "failed to select due outbox events")
		}
		if len(eventModels) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, 0, len(eventModels))
		for _, eventM := range eventModels {
			ids = append(ids, eventM.ID)
		}

		if err := tx.Model(&model.OutboxEventModel{}).
			Where("id IN ?", ids).
			Update("available_at", now.Add(lease)).Error; err != nil {
			return errors.Wrap(err, "failed to lease outbox events")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	events := make([]*entity.OutboxEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toOutboxDomain(eventM))
	}

	return events, nil
}

// MarkDispatched records a successful delivery.
func (repo *outboxRepository) MarkDispatched(ctx context.Context, id uuid.UUID, at time.Time) error {
	return repo.update(ctx, id, map[string]any{
		"status":        string(entity.OutboxStatusDispatched),
		"attempts":      gorm.Expr("attempts + 1"),
		"dispatched_at": at,
		"last_error":    "",
	})
}

// MarkFailed records a failed attempt and schedules the next one.
func (repo *outboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string, nextAttempt time.Time, dead bool) error {
	status := entity.OutboxStatusPending
	if dead {
		status = entity.OutboxStatusDead
	}

	return repo.update(ctx, id, map[string]any{
		"status":       string(status),
		"attempts":     gorm.Expr("attempts + 1"),
		"last_error":   lastError,
		"available_at": nextAttempt,
	})
}

func (repo *outboxRepository) update(ctx context.Context, id uuid.UUID, values map[string]any) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.OutboxEventModel{}).
		Where("id = ?", id).
		Updates(values).Error; err != nil {
		return errors.Wrap(err, "failed to update outbox event")
	}

	return nil
}

// --- Mapper Functions ---

func fromOutboxDomain(e *entity.OutboxEvent) *model.OutboxEventModel {
	return &model.OutboxEventModel{
		ID:           e.ID,
		Topic:        string(e.Topic),
		Payload:      datatypes.JSON(e.Payload),
		Status:       string(e.Status),
		Attempts:     e.Attempts,
		LastError:    e.LastError,
		AvailableAt:  e.AvailableAt,
		CreatedAt:    e.CreatedAt,
		DispatchedAt: e.DispatchedAt,
	}
}

func toOutboxDomain(m *model.OutboxEventModel) *entity.OutboxEvent {
	return &entity.OutboxEvent{
		ID:           m.ID,
		Topic:        entity.OutboxTopic(m.Topic),
		Payload:      []byte(m.Payload),
		Status:       entity.OutboxStatus(m.Status),
		Attempts:     m.Attempts,
		LastError:    m.LastError,
		AvailableAt:  m.AvailableAt,
		CreatedAt:    m.CreatedAt,
		DispatchedAt: m.DispatchedAt,
	}
}
