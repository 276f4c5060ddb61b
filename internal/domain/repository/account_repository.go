// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"servicehub/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when no account of the role matches.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountEmailTaken is returned when the email is already registered for the role.
	ErrAccountEmailTaken = errors.New("account email already registered")
	// ErrTokenVersionChanged is returned when a password reset races another reset.
	ErrTokenVersionChanged = errors.New("account token version changed")
	// ErrWorkingDayExists is returned when working hours for a day are already stored.
	ErrWorkingDayExists = errors.New("working hours already set for day")
	// ErrListedServiceExists is returned when the provider already lists the service.
	ErrListedServiceExists = errors.New("service already listed by provider")
)

// AccountRepository defines the interface for account-related database operations.
// Every lookup is scoped by role: the same email may exist once per role.
type AccountRepository interface {
	// Create persists a new account. Service provider accounts also get an empty profile.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account with its provider profile, if any.
	FindByID(ctx context.Context, role entity.Role, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves an account by its lowercased email.
	FindByEmail(ctx context.Context, role entity.Role, email string) (*entity.Account, error)

	// TokenVersion returns only the stored token version of an account.
	TokenVersion(ctx context.Context, role entity.Role, id uuid.UUID) (int, error)

	// UpdateContact stores a new phone number and avatar URL.
	UpdateContact(ctx context.Context, role entity.Role, id uuid.UUID, phone, avatarURL string) error

	// UpdateAddress stores a new postal address.
	UpdateAddress(ctx context.Context, role entity.Role, id uuid.UUID, address string) error

	// ResetPassword stores the new hash and increments the token version, but only while
	// the stored version still equals expectedVersion. It returns the new version.
	ResetPassword(ctx context.Context, role entity.Role, id uuid.UUID, passwordHash string, expectedVersion int) (int, error)
}

// ProviderProfileRepository defines the provider-only profile operations.
type ProviderProfileRepository interface {
	// AddWorkingHours stores entries for days that have none yet.
	// Returns ErrWorkingDayExists if any day is already set; nothing is written then.
	AddWorkingHours(ctx context.Context, providerID uuid.UUID, hours []entity.WorkingHour) error

	// SetCNIC replaces the identity number and its two images.
	SetCNIC(ctx context.Context, providerID uuid.UUID, number string, images []string) error

	// AddListedServices links catalog services to the provider.
	// Returns ErrListedServiceExists if any of them is already linked.
	AddListedServices(ctx context.Context, providerID uuid.UUID, serviceIDs []uuid.UUID) error

	// MarkVerified sets the admin verification flag.
	MarkVerified(ctx context.Context, providerID uuid.UUID) error
}
