package usecase

import (
	"context"
	"time"

	"servicehub/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput defines a new order on a provider's service post.
type PlaceOrderInput struct {
	ProviderID       uuid.UUID
	ServicePostID    uuid.UUID
	DeliverySchedule *time.Time
}

// OrderUsecase defines the order lifecycle. Every transition notifies the counterparty.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, consumer entity.Principal, input PlaceOrderInput) (*entity.ServiceOrder, error)
	// Accept requires a delivery schedule.
	Accept(ctx context.Context, provider entity.Principal, orderID uuid.UUID, schedule *time.Time) (*entity.ServiceOrder, error)
	// Reject is available to both the provider and the consumer while the order is pending.
	Reject(ctx context.Context, actor entity.Principal, orderID uuid.UUID) (*entity.ServiceOrder, error)
	Cancel(ctx context.Context, provider entity.Principal, orderID uuid.UUID) (*entity.ServiceOrder, error)
	Complete(ctx context.Context, provider entity.Principal, orderID uuid.UUID) (*entity.ServiceOrder, error)

	// ListOrders returns the party's orders, all of them when no status is given.
	ListOrders(ctx context.Context, party entity.Principal, statuses ...entity.OrderStatus) ([]*entity.ServiceOrder, error)
}
