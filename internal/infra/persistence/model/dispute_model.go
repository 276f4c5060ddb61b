package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DisputeModel mirrors the 'disputes' table.
type DisputeModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title        string     `gorm:"type:varchar(50);not null"`
	Details      string     `gorm:"type:varchar(500);not null"`
	FiledBy      uuid.UUID  `gorm:"type:uuid;not null;index"`
	FiledAgainst uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID      *uuid.UUID `gorm:"type:uuid"`
	Status       string     `gorm:"type:varchar(16);not null;index"`
	Resolution   string     `gorm:"type:text"`
	ResolvedBy   *uuid.UUID `gorm:"type:uuid"`
	ResolvedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DisputeModel) TableName() string {
	return "disputes"
}

// BeforeCreate assigns the id.
func (m *DisputeModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}

// RefundRequestModel mirrors the 'refund_requests' table.
type RefundRequestModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RequestedBy      uuid.UUID       `gorm:"type:uuid;not null;index"`
	RequestedAgainst uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderID          *uuid.UUID      `gorm:"type:uuid"`
	Amount           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	AmountType       string          `gorm:"type:varchar(16);not null"`
	Details          string          `gorm:"type:text"`
	Status           string          `gorm:"type:varchar(16);not null;index"`
	ResolvedBy       *uuid.UUID      `gorm:"type:uuid"`
	ResolvedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefundRequestModel) TableName() string {
	return "refund_requests"
}

// BeforeCreate assigns the id.
func (m *RefundRequestModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}
