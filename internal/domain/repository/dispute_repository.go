package repository

import (
	"context"
	"errors"
	"time"

	"servicehub/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for dispute and refund persistence.
var (
	ErrDisputeNotFound      = errors.New("dispute not found")
	ErrPendingDisputeExists = errors.New("pending dispute already exists")
	ErrDisputeNotPending    = errors.New("dispute is not pending")

	ErrRefundNotFound      = errors.New("refund request not found")
	ErrPendingRefundExists = errors.New("pending refund request already exists")
	ErrRefundNotPending    = errors.New("refund request is not pending")
)

// ClaimScope identifies the (filer, target, order) triple a pending claim is unique in.
// A nil OrderID scopes to claims filed without an order.
type ClaimScope struct {
	FiledBy      uuid.UUID
	FiledAgainst uuid.UUID
	OrderID      *uuid.UUID
}

// DisputeResolution settles a pending dispute.
type DisputeResolution struct {
	ID         uuid.UUID
	Status     entity.DisputeStatus
	Resolution string
	AdminID    uuid.UUID
	ResolvedAt time.Time
}

// DisputeRepository defines the interface for dispute-related database operations.
type DisputeRepository interface {
	// Create persists a new pending dispute. Returns ErrPendingDisputeExists when the
	// pending-dispute index rejects the insert.
	Create(ctx context.Context, dispute *entity.Dispute) error

	// ExistsPending reports whether a pending dispute exists in the scope.
	ExistsPending(ctx context.Context, scope ClaimScope) (bool, error)

	// FindByID retrieves a single dispute.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Dispute, error)

	// ListByFiler returns the consumer's disputes, newest first.
	ListByFiler(ctx context.Context, consumerID uuid.UUID) ([]*entity.Dispute, error)

	// List returns every dispute, newest first, optionally filtered by status.
	List(ctx context.Context, status *entity.DisputeStatus) ([]*entity.Dispute, error)

	// Resolve moves a pending dispute to a terminal status.
	// Returns ErrDisputeNotFound or ErrDisputeNotPending.
	Resolve(ctx context.Context, resolution DisputeResolution) (*entity.Dispute, error)

	// DeleteByFiler removes a dispute filed by the consumer, regardless of status.
	DeleteByFiler(ctx context.Context, id, consumerID uuid.UUID) error
}

// RefundResolution settles a pending refund request.
type RefundResolution struct {
	ID         uuid.UUID
	Status     entity.RefundStatus
	AdminID    uuid.UUID
	ResolvedAt time.Time
}

// RefundRepository defines the interface for refund-related database operations.
type RefundRepository interface {
	// Create persists a new pending refund request.
	Create(ctx context.Context, refund *entity.RefundRequest) error

	// ExistsPending reports whether a pending refund request exists in the scope.
	ExistsPending(ctx context.Context, scope ClaimScope) (bool, error)

	// FindByID retrieves a single refund request.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RefundRequest, error)

	// ListByRequester returns the consumer's refund requests, newest first.
	ListByRequester(ctx context.Context, consumerID uuid.UUID) ([]*entity.RefundRequest, error)

	// List returns every refund request, newest first, optionally filtered by status.
	List(ctx context.Context, status *entity.RefundStatus) ([]*entity.RefundRequest, error)

	// Resolve moves a pending refund request to a terminal status.
	// Returns ErrRefundNotFound or ErrRefundNotPending.
	Resolve(ctx context.Context, resolution RefundResolution) (*entity.RefundRequest, error)
}
