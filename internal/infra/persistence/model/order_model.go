package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceOrderModel mirrors the 'service_orders' table. The partial unique index keeps at
// most one pending or accepted order per (consumer, provider, post).
type ServiceOrderModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConsumerID       uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_service_orders_active,priority:1,where:status = 'pending' OR status = 'accepted'"`
	ProviderID       uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_service_orders_active,priority:2,where:status = 'pending' OR status = 'accepted'"`
	ServicePostID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_service_orders_active,priority:3,where:status = 'pending' OR status = 'accepted'"`
	DeliverySchedule *time.Time
	Status           string `gorm:"type:varchar(16);not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceOrderModel) TableName() string {
	return "service_orders"
}

// BeforeCreate assigns the id.
func (m *ServiceOrderModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}
