package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is one identity of a given role. The same email may exist once per role.
type Account struct {
	ID              uuid.UUID        `json:"id"`                  // The Global Unique Identifier (GUID) for the account.
	Role            Role             `json:"role"`                // Which of the three account variants this is.
	Name            string           `json:"name"`                // Display name used in notifications and emails.
	Email           string           `json:"email"`               // Lowercased login identifier, unique per role.
	PasswordHash    string           `json:"-"`                   // bcrypt hash, never serialised.
	Phone           string           `json:"phone,omitempty"`     // International phone number.
	AvatarURL       string           `json:"avatarUrl,omitempty"` // Durable URL returned by the media store.
	Address         string           `json:"address,omitempty"`   // Free-form postal address (consumers and providers).
	IsEmailVerified bool             `json:"isEmailVerified"`     // Not set by any flow in this service; kept for parity with stored data.
	TokenVersion    int              `json:"-"`                   // Incremented on every password reset; embedded in session tokens.
	Provider        *ProviderProfile `json:"provider,omitempty"`  // Only set for service providers.
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// Ref returns the tagged reference of the account.
func (a *Account) Ref() PartyRef {
	return PartyRef{Kind: a.Role, ID: a.ID}
}

// ContactEmail returns the address used for outbound email.
func (a *Account) ContactEmail() string {
	return a.Email
}

// DisplayName returns the name shown in notifications.
func (a *Account) DisplayName() string {
	return a.Name
}

// Principal converts the account to the request-scoped principal.
func (a *Account) Principal() Principal {
	return Principal{ID: a.ID, Role: a.Role, Email: a.Email, Name: a.Name}
}

// ProviderProfile holds data specific to the service provider role.
type ProviderProfile struct {
	CNICNumber        string        `json:"cnicNumber,omitempty"` // National identity number, #####-#######-#.
	CNICImages        []string      `json:"cnicImages,omitempty"` // Exactly two uploaded images once set.
	ListedServiceIDs  []uuid.UUID   `json:"listedServiceIds"`     // Catalog services the provider offers.
	WorkingHours      []WorkingHour `json:"workingHours"`         // At most one entry per day.
	IsAccountVerified bool          `json:"isAccountVerified"`    // Set by an admin.
}

// HasListedService reports whether the provider already lists the service.
func (p *ProviderProfile) HasListedService(serviceID uuid.UUID) bool {
	for _, id := range p.ListedServiceIDs {
		if id == serviceID {
			return true
		}
	}

	return false
}

// Weekday is a lowercase English day name.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// IsValid checks if the Weekday is a valid value.
func (d Weekday) IsValid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	default:
		return false
	}
}

// WorkingHour is one opening window of a provider, times are "HH:MM" in local time.
type WorkingHour struct {
	Day    Weekday `json:"dayOfWeek"`
	Opens  string  `json:"opens"`
	Closes string  `json:"closes"`
}
