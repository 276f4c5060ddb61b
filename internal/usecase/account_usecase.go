// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/service"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an account of any role.
type SignUpInput struct {
	Role     entity.Role
	Name     string
	Email    string
	Password string
}

// SignInInput defines the credentials for a role-scoped sign in.
type SignInInput struct {
	Role     entity.Role
	Email    string
	Password string
}

// ResetPasswordInput carries a reset token and the replacement password.
type ResetPasswordInput struct {
	Role     entity.Role
	Token    string
	Password string
}

// UpdateContactInput carries a new phone number and an optional avatar image.
type UpdateContactInput struct {
	Phone  string
	Avatar *service.MediaUpload
}

// --- Output DTOs ---

// SessionOutput is returned after a successful sign in.
type SessionOutput struct {
	Token     string
	ExpiresAt time.Time
	Account   *entity.Account
}

// AccountUsecase defines account, session and password operations for all three roles.
type AccountUsecase interface {
	SignUp(ctx context.Context, input SignUpInput) (*entity.Account, error)
	SignIn(ctx context.Context, input SignInInput) (*SessionOutput, error)

	// Authenticate validates a session token of the role and checks its token version.
	Authenticate(ctx context.Context, role entity.Role, token string) (*entity.Principal, error)
	LoadCurrent(ctx context.Context, principal entity.Principal) (*entity.Account, error)

	// SendPasswordReset queues a reset email with a short-lived link.
	SendPasswordReset(ctx context.Context, role entity.Role, email string) error
	// ResetPassword stores the new password and revokes every session of the account.
	ResetPassword(ctx context.Context, input ResetPasswordInput) error

	UpdateAvatarAndPhone(ctx context.Context, principal entity.Principal, input UpdateContactInput) (*entity.Account, error)
	UpdateAddress(ctx context.Context, principal entity.Principal, address string) (*entity.Account, error)
}
