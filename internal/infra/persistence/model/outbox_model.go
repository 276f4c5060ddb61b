package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OutboxEventModel mirrors the 'outbox_events' table.
type OutboxEventModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Topic        string         `gorm:"type:varchar(64);not null"`
	Payload      datatypes.JSON `gorm:"not null"`
	Status       string         `gorm:"type:varchar(16);not null;index:ix_outbox_due,priority:1"`
	Attempts     int            `gorm:"not null;default:0"`
	LastError    string         `gorm:"type:text"`
	AvailableAt  time.Time      `gorm:"not null;index:ix_outbox_due,priority:2"`
	CreatedAt    time.Time
	DispatchedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (OutboxEventModel) TableName() string {
	return "outbox_events"
}

// BeforeCreate assigns the id.
func (m *OutboxEventModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}

// All lists every persistence model, in dependency order, for AutoMigrate in tests.
func All() []any {
	return []any{
		&AccountModel{},
		&ProviderProfileModel{},
		&WorkingHourModel{},
		&ServiceModel{},
		&ProviderServiceModel{},
		&ServicePostModel{},
		&RatingModel{},
		&ServiceOrderModel{},
		&DisputeModel{},
		&RefundRequestModel{},
		&NotificationModel{},
		&ConversationModel{},
		&MessageModel{},
		&OutboxEventModel{},
	}
}
