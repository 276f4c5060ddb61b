package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DisputeStatus is the state of a Dispute.
type DisputeStatus string

const (
	DisputeStatusPending  DisputeStatus = "pending"
	DisputeStatusResolved DisputeStatus = "resolved"
	DisputeStatusRejected DisputeStatus = "rejected"
)

// IsValid checks if the DisputeStatus is a valid value.
func (s DisputeStatus) IsValid() bool {
	switch s {
	case DisputeStatusPending, DisputeStatusResolved, DisputeStatusRejected:
		return true
	default:
		return false
	}
}

// Dispute is filed by a consumer against a provider and settled by an admin.
type Dispute struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"disputeTitle"`
	Details      string        `json:"disputeDetails"`
	FiledBy      uuid.UUID     `json:"filedBy"`      // Consumer.
	FiledAgainst uuid.UUID     `json:"filedAgainst"` // Service provider.
	OrderID      *uuid.UUID    `json:"order,omitempty"`
	Status       DisputeStatus `json:"status"`
	Resolution   string        `json:"disputeResolution,omitempty"`
	ResolvedBy   *uuid.UUID    `json:"resolvedBy,omitempty"` // Admin who settled the dispute.
	ResolvedAt   *time.Time    `json:"resolvedAt,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// Dispute field limits.
const (
	DisputeTitleMin   = 3
	DisputeTitleMax   = 50
	DisputeDetailsMin = 5
	DisputeDetailsMax = 500
)

// RefundStatus is the state of a RefundRequest.
type RefundStatus string

const (
	RefundStatusPending  RefundStatus = "pending"
	RefundStatusApproved RefundStatus = "approved"
	RefundStatusRejected RefundStatus = "rejected"
)

// IsValid checks if the RefundStatus is a valid value.
func (s RefundStatus) IsValid() bool {
	switch s {
	case RefundStatusPending, RefundStatusApproved, RefundStatusRejected:
		return true
	default:
		return false
	}
}

// RefundAmountType says how Amount is interpreted.
type RefundAmountType string

const (
	RefundAmountFixed      RefundAmountType = "fixed"
	RefundAmountPercentage RefundAmountType = "percentage"
)

// IsValid checks if the RefundAmountType is a valid value.
func (t RefundAmountType) IsValid() bool {
	return t == RefundAmountFixed || t == RefundAmountPercentage
}

// RefundRequest is a consumer's claim for money back from a provider.
type RefundRequest struct {
	ID               uuid.UUID        `json:"id"`
	RequestedBy      uuid.UUID        `json:"refundRequestedBy"`      // Consumer.
	RequestedAgainst uuid.UUID        `json:"refundRequestedAgainst"` // Service provider.
	OrderID          *uuid.UUID       `json:"order,omitempty"`
	Amount           decimal.Decimal  `json:"refundAmount"`
	AmountType       RefundAmountType `json:"refundAmountType"`
	Details          string           `json:"refundDetails"`
	Status           RefundStatus     `json:"refundAmountStatus"`
	ResolvedBy       *uuid.UUID       `json:"resolvedBy,omitempty"`
	ResolvedAt       *time.Time       `json:"resolvedAt,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}
