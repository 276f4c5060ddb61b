package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the state of a ServiceOrder.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusRejected  OrderStatus = "rejected"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusCompleted OrderStatus = "completed"
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusRejected, OrderStatusCancelled, OrderStatusCompleted:
		return true
	default:
		return false
	}
}

// IsActive reports whether the status blocks a new order for the same triple.
func (s OrderStatus) IsActive() bool {
	return s == OrderStatusPending || s == OrderStatusAccepted
}

// IsTerminal reports whether no further transition is defined.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusRejected || s == OrderStatusCancelled || s == OrderStatusCompleted
}

// ActiveOrderStatuses lists the statuses that count as an active order.
func ActiveOrderStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusPending, OrderStatusAccepted}
}

// OrderAction names a transition of the order state machine.
type OrderAction string

const (
	OrderActionPlace    OrderAction = "place"
	OrderActionAccept   OrderAction = "accept"
	OrderActionReject   OrderAction = "reject"
	OrderActionCancel   OrderAction = "cancel"
	OrderActionComplete OrderAction = "complete"
)

// PastTense is used in notification and email copy ("Order #… has been accepted").
func (a OrderAction) PastTense() string {
	switch a {
	case OrderActionPlace:
		return "placed"
	case OrderActionAccept:
		return "accepted"
	case OrderActionReject:
		return "rejected"
	case OrderActionCancel:
		return "cancelled"
	case OrderActionComplete:
		return "completed"
	default:
		return string(a)
	}
}

// OrderTransition is one row of the order state machine.
type OrderTransition struct {
	Action OrderAction
	From   OrderStatus
	To     OrderStatus
	Actors Roles
}

// AllowedFor reports whether the role may perform the transition.
func (t OrderTransition) AllowedFor(role Role) bool {
	return slices.Contains(t.Actors, role)
}

var orderTransitions = map[OrderAction]OrderTransition{
	OrderActionAccept: {
		Action: OrderActionAccept,
		From:   OrderStatusPending,
		To:     OrderStatusAccepted,
		Actors: Roles{RoleServiceProvider},
	},
	OrderActionReject: {
		Action: OrderActionReject,
		From:   OrderStatusPending,
		To:     OrderStatusRejected,
		Actors: Roles{RoleServiceProvider, RoleConsumer},
	},
	OrderActionCancel: {
		Action: OrderActionCancel,
		From:   OrderStatusAccepted,
		To:     OrderStatusCancelled,
		Actors: Roles{RoleServiceProvider},
	},
	OrderActionComplete: {
		Action: OrderActionComplete,
		From:   OrderStatusAccepted,
		To:     OrderStatusCompleted,
		Actors: Roles{RoleServiceProvider},
	},
}

// TransitionFor returns the transition performed by the action on an existing order.
// Placing an order is not a transition and is not part of the table.
func TransitionFor(action OrderAction) (OrderTransition, bool) {
	t, ok := orderTransitions[action]

	return t, ok
}

// ServiceOrder links a consumer, a provider and a service post through the lifecycle.
type ServiceOrder struct {
	ID               uuid.UUID   `json:"id"`                         // The Global Unique Identifier (GUID) for the order.
	ConsumerID       uuid.UUID   `json:"orderedBy"`                  // Consumer who placed the order.
	ProviderID       uuid.UUID   `json:"serviceProvider"`            // Provider the order is addressed to.
	ServicePostID    uuid.UUID   `json:"servicePost"`                // Post the order was placed on.
	DeliverySchedule *time.Time  `json:"deliverySchedule,omitempty"` // Set on acceptance, optionally proposed when placing.
	Status           OrderStatus `json:"status"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// PartyFor returns the order's participant of the given role.
func (o *ServiceOrder) PartyFor(role Role) (PartyRef, bool) {
	switch role {
	case RoleConsumer:
		return PartyRef{Kind: RoleConsumer, ID: o.ConsumerID}, true
	case RoleServiceProvider:
		return PartyRef{Kind: RoleServiceProvider, ID: o.ProviderID}, true
	default:
		return PartyRef{}, false
	}
}

// Counterparty returns the other side of the order relative to the acting role.
func (o *ServiceOrder) Counterparty(actor Role) (PartyRef, bool) {
	switch actor {
	case RoleConsumer:
		return PartyRef{Kind: RoleServiceProvider, ID: o.ProviderID}, true
	case RoleServiceProvider:
		return PartyRef{Kind: RoleConsumer, ID: o.ConsumerID}, true
	default:
		return PartyRef{}, false
	}
}
