// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"servicehub/config"
	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/service"
	"servicehub/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "servicehub"

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
// Session tokens are signed with a per-role key; reset tokens use a single key and carry the role.
type jwtService struct {
	sessionKeys map[entity.Role][]byte
	resetKey    []byte
	sessionTTL  time.Duration
	resetTTL    time.Duration
	now         func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	keys := cfg.SecretKey
	if keys.Consumer == "" || keys.ServiceProvider == "" || keys.Admin == "" || keys.Reset == "" {
		return nil, errors.New("jwt secrets must be provided for every role")
	}

	sessionTTL, resetTTL := config.DefaultSessionTTL, config.DefaultResetTTL
	if cfg.Session != nil {
		if cfg.Session.TTL > 0 {
			sessionTTL = cfg.Session.TTL
		}
		if cfg.Session.ResetTTL > 0 {
			resetTTL = cfg.Session.ResetTTL
		}
	}

	return &jwtService{
		sessionKeys: map[entity.Role][]byte{
			entity.RoleConsumer:        []byte(keys.Consumer),
			entity.RoleServiceProvider: []byte(keys.ServiceProvider),
			entity.RoleAdmin:           []byte(keys.Admin),
		},
		resetKey:   []byte(keys.Reset),
		sessionTTL: sessionTTL,
		resetTTL:   resetTTL,
		now:        time.Now,
	}, nil
}

// IssueSession creates a session token for the role.
func (s *jwtService) IssueSession(role entity.Role, accountID uuid.UUID, tokenVersion int) (string, time.Time, error) {
	key, ok := s.sessionKeys[role]
	if !ok {
		return "", time.Time{}, errors.Errorf("no signing key for role %q", role)
	}

	expiresAt := s.now().Add(s.sessionTTL)
	token, err := s.sign(key, role, accountID, tokenVersion, service.TokenTypeSession, expiresAt)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// ValidateSession parses a session token signed with the role's key.
func (s *jwtService) ValidateSession(role entity.Role, tokenString string) (*service.Claims, error) {
	key, ok := s.sessionKeys[role]
	if !ok {
		return nil, errors.Errorf("no signing key for role %q", role)
	}

	return s.parse(key, role, service.TokenTypeSession, tokenString)
}

// IssueReset creates a password reset token bound to the current token version.
func (s *jwtService) IssueReset(role entity.Role, accountID uuid.UUID, tokenVersion int) (string, error) {
	return s.sign(s.resetKey, role, accountID, tokenVersion, service.TokenTypeReset, s.now().Add(s.resetTTL))
}

// ValidateReset parses a password reset token for the role.
func (s *jwtService) ValidateReset(role entity.Role, tokenString string) (*service.Claims, error) {
	return s.parse(s.resetKey, role, service.TokenTypeReset, tokenString)
}

// SessionTTL returns the lifetime of session tokens.
func (s *jwtService) SessionTTL() time.Duration {
	return s.sessionTTL
}

func (s *jwtService) sign(key []byte, role entity.Role, accountID uuid.UUID, tokenVersion int, tokenType string, expiresAt time.Time) (string, error) {
	now := s.now()
	claims := &service.Claims{
		AccountID:    accountID,
		Role:         role,
		TokenVersion: tokenVersion,
		Type:         tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (s *jwtService) parse(key []byte, role entity.Role, tokenType, tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	if claims.Type != tokenType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}
	if claims.Role != role {
		return nil, errors.Errorf("token issued for role %q", claims.Role)
	}
	if claims.AccountID == uuid.Nil {
		return nil, errors.New("token has no account")
	}

	return claims, nil
}
