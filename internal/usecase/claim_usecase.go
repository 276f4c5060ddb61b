package usecase

import (
	"context"

	"servicehub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FileDisputeInput defines a dispute against a provider.
type FileDisputeInput struct {
	ProviderID uuid.UUID
	Title      string
	Details    string
	OrderID    *uuid.UUID
}

// DisputeUsecase defines the dispute workflow.
type DisputeUsecase interface {
	File(ctx context.Context, consumer entity.Principal, input FileDisputeInput) (*entity.Dispute, error)
	Resolve(ctx context.Context, admin entity.Principal, id uuid.UUID, resolution string) (*entity.Dispute, error)
	Reject(ctx context.Context, admin entity.Principal, id uuid.UUID) (*entity.Dispute, error)
	// Delete removes a dispute filed by the consumer in any status.
	Delete(ctx context.Context, consumer entity.Principal, id uuid.UUID) error
	ListForConsumer(ctx context.Context, consumer entity.Principal) ([]*entity.Dispute, error)
	ListAll(ctx context.Context, status *entity.DisputeStatus) ([]*entity.Dispute, error)
}

// SubmitRefundInput defines a refund request against a provider.
type SubmitRefundInput struct {
	ProviderID uuid.UUID
	Amount     decimal.Decimal
	AmountType entity.RefundAmountType
	Details    string
	OrderID    *uuid.UUID
}

// RefundUsecase defines the refund workflow.
type RefundUsecase interface {
	Submit(ctx context.Context, consumer entity.Principal, input SubmitRefundInput) (*entity.RefundRequest, error)
	Approve(ctx context.Context, admin entity.Principal, id uuid.UUID) (*entity.RefundRequest, error)
	Reject(ctx context.Context, admin entity.Principal, id uuid.UUID) (*entity.RefundRequest, error)
	ListForConsumer(ctx context.Context, consumer entity.Principal) ([]*entity.RefundRequest, error)
	ListAll(ctx context.Context, status *entity.RefundStatus) ([]*entity.RefundRequest, error)
}
