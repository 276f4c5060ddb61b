package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ServiceModel mirrors the 'services' table.
type ServiceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}

// BeforeCreate assigns the id.
func (m *ServiceModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}

// ServicePostModel mirrors the 'service_posts' table.
type ServicePostModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProviderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ServiceID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Message    string          `gorm:"type:text;not null"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageURL   string          `gorm:"type:text;not null"`
	CreatedAt  time.Time       `gorm:"index"`
	UpdatedAt  time.Time

	Ratings []RatingModel `gorm:"foreignKey:ServicePostID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ServicePostModel) TableName() string {
	return "service_posts"
}

// BeforeCreate assigns the id.
func (m *ServicePostModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}

// RatingModel mirrors the 'service_post_ratings' table. One row per (post, consumer).
type RatingModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServicePostID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_ratings_post_consumer,priority:1"`
	ConsumerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_ratings_post_consumer,priority:2"`
	Stars         int       `gorm:"not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "service_post_ratings"
}

// BeforeCreate assigns the id.
func (m *RatingModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}
