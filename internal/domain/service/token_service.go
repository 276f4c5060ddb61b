// Package service declares the ports the usecases depend on: credentials,
// media storage, mail, event publishing and metrics.
package service

import (
	"time"

	"servicehub/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeSession = "session"
	TokenTypeReset   = "reset"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	AccountID    uuid.UUID   `json:"accountId"`
	Role         entity.Role `json:"role"`
	TokenVersion int         `json:"tokenVersion"`
	Type         string      `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating role-scoped tokens.
// Each role signs with its own key, so a consumer token never validates as an admin token.
type TokenService interface {
	// IssueSession creates a session token and returns it with its expiry.
	IssueSession(role entity.Role, accountID uuid.UUID, tokenVersion int) (token string, expiresAt time.Time, err error)

	// ValidateSession parses a session token signed with the role's key.
	ValidateSession(role entity.Role, tokenString string) (*Claims, error)

	// IssueReset creates a short-lived password reset token bound to the current token version.
	IssueReset(role entity.Role, accountID uuid.UUID, tokenVersion int) (string, error)

	// ValidateReset parses a password reset token for the role.
	ValidateReset(role entity.Role, tokenString string) (*Claims, error)

	// SessionTTL returns the lifetime of session tokens, used as the cookie max age.
	SessionTTL() time.Duration
}

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
