package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AccountModel mirrors the 'accounts' table. One row per (role, email).
type AccountModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role            string    `gorm:"type:varchar(32);not null;uniqueIndex:ux_accounts_role_email,priority:1"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Email           string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_accounts_role_email,priority:2"`
	PasswordHash    string    `gorm:"type:text;not null"`
	Phone           string    `gorm:"type:varchar(20)"`
	AvatarURL       string    `gorm:"type:text"`
	Address         string    `gorm:"type:text"`
	IsEmailVerified bool      `gorm:"not null;default:false"`
	TokenVersion    int       `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	ProviderProfile *ProviderProfileModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	WorkingHours    []WorkingHourModel    `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
	ListedServices  []ProviderServiceModel `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// BeforeCreate assigns the id.
func (m *AccountModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}

// ProviderProfileModel mirrors the 'provider_profiles' table. AccountID references accounts.id.
type ProviderProfileModel struct {
	AccountID         uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	CNICNumber        string                      `gorm:"type:varchar(15)"`
	CNICImages        datatypes.JSONSlice[string] `gorm:"type:json"`
	IsAccountVerified bool                        `gorm:"not null;default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProviderProfileModel) TableName() string {
	return "provider_profiles"
}

// WorkingHourModel mirrors the 'provider_working_hours' table.
type WorkingHourModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_working_hours_provider_day,priority:1"`
	DayOfWeek  string    `gorm:"type:varchar(10);not null;uniqueIndex:ux_working_hours_provider_day,priority:2"`
	Opens      string    `gorm:"type:varchar(5);not null"`
	Closes     string    `gorm:"type:varchar(5);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkingHourModel) TableName() string {
	return "provider_working_hours"
}

// BeforeCreate assigns the id.
func (m *WorkingHourModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}

// ProviderServiceModel mirrors the 'provider_services' join table.
type ProviderServiceModel struct {
	ProviderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProviderServiceModel) TableName() string {
	return "provider_services"
}

// StringList converts a slice to its JSON column form. A nil slice is stored as [].
func StringList(values []string) datatypes.JSONSlice[string] {
	if values == nil {
		values = []string{}
	}

	return datatypes.JSONSlice[string](values)
}
