package repository

import (
	"context"
	"errors"
	"time"

	"servicehub/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when no order matches the id for the acting party.
	ErrOrderNotFound = errors.New("order not found")
	// ErrActiveOrderExists is returned when an active order already exists for the triple.
	ErrActiveOrderExists = errors.New("active order already exists")
	// ErrOrderStatusMismatch is returned when a conditional transition found another status.
	ErrOrderStatusMismatch = errors.New("order status does not match transition source")
)

// OrderTransitionParams describes a compare-and-set status change.
type OrderTransitionParams struct {
	OrderID          uuid.UUID
	Party            entity.PartyRef // Consumer or provider the order must belong to.
	From             entity.OrderStatus
	To               entity.OrderStatus
	DeliverySchedule *time.Time // Written only when non-nil.
}

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// Create persists a new order. Returns ErrActiveOrderExists when the active-order
	// index rejects the insert.
	Create(ctx context.Context, order *entity.ServiceOrder) error

	// FindActive returns the pending or accepted order of the triple, or ErrOrderNotFound.
	FindActive(ctx context.Context, consumerID, providerID, servicePostID uuid.UUID) (*entity.ServiceOrder, error)

	// FindForParty retrieves an order only if the party participates in it.
	FindForParty(ctx context.Context, id uuid.UUID, party entity.PartyRef) (*entity.ServiceOrder, error)

	// ListForParty returns the party's orders, newest first, optionally filtered by status.
	ListForParty(ctx context.Context, party entity.PartyRef, statuses []entity.OrderStatus) ([]*entity.ServiceOrder, error)

	// Transition sets To only if the order belongs to the party and is still in From.
	// Returns ErrOrderNotFound if the order does not exist for the party and
	// ErrOrderStatusMismatch if it exists in another status.
	Transition(ctx context.Context, params OrderTransitionParams) (*entity.ServiceOrder, error)

	// DeleteByServicePost removes every order placed on the post and the claims linked to them.
	DeleteByServicePost(ctx context.Context, servicePostID uuid.UUID) (int64, error)
}
