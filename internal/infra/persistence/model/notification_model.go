package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationModel mirrors the 'notifications' table. Sender and recipient are stored
// as (kind, id) pairs.
type NotificationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Message       string    `gorm:"type:text;not null"`
	SenderKind    string    `gorm:"type:varchar(32);not null"`
	SenderID      uuid.UUID `gorm:"type:uuid;not null"`
	RecipientKind string    `gorm:"type:varchar(32);not null;index:ix_notifications_recipient,priority:1"`
	RecipientID   uuid.UUID `gorm:"type:uuid;not null;index:ix_notifications_recipient,priority:2"`
	RelatedKind   string    `gorm:"type:varchar(32);not null"`
	RelatedID     uuid.UUID `gorm:"type:uuid;not null"`
	Read          bool      `gorm:"not null;default:false;index:ix_notifications_recipient,priority:3"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// BeforeCreate assigns the id.
func (m *NotificationModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}

// ConversationModel mirrors the 'conversations' table. One row per consumer-provider pair.
type ConversationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConsumerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_conversations_pair,priority:1"`
	ProviderID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_conversations_pair,priority:2"`
	LastMessageAt *time.Time
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConversationModel) TableName() string {
	return "conversations"
}

// BeforeCreate assigns the id.
func (m *ConversationModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}

// MessageModel mirrors the 'messages' table.
type MessageModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderKind     string    `gorm:"type:varchar(32);not null"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null"`
	Body           string    `gorm:"type:text;not null"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}

// BeforeCreate assigns the id.
func (m *MessageModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}
