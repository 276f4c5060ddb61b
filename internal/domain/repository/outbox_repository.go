package repository

import (
	"context"
	"time"

	"servicehub/internal/domain/entity"

	"github.com/google/uuid"
)

// OutboxRepository stores side effects written in the same transaction as the state change.
type OutboxRepository interface {
	// Enqueue persists pending events.
	Enqueue(ctx context.Context, events ...*entity.OutboxEvent) error

	// ClaimDue returns up to limit pending events whose AvailableAt has passed and pushes
	// their AvailableAt forward by lease, so concurrent relays do not pick them up.
	ClaimDue(ctx context.Context, now time.Time, limit int, lease time.Duration) ([]*entity.OutboxEvent, error)

	// MarkDispatched records a successful delivery.
	MarkDispatched(ctx context.Context, id uuid.UUID, at time.Time) error

	// MarkFailed records a failed attempt. A dead event is never claimed again.
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string, nextAttempt time.Time, dead bool) error
}
