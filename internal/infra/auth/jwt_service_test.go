package auth

import (
	"testing"
	"time"

	"servicehub/config"
	"servicehub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{
			Consumer:        "consumer_secret_key_very_long_for_testing",
			ServiceProvider: "provider_secret_key_very_long_for_testing",
			Admin:           "admin_secret_key_very_long_for_testing",
			Reset:           "reset_secret_key_very_long_for_testing",
		},
		Session: &config.SessionConfig{TTL: time.Hour, ResetTTL: 10 * time.Minute},
	}
}

func TestJWTService_SessionRoundTrip(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	accountID := uuid.New()
	token, expiresAt, err := svc.IssueSession(entity.RoleServiceProvider, accountID, 3)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)
	assert.Equal(t, time.Hour, svc.SessionTTL())

	claims, err := svc.ValidateSession(entity.RoleServiceProvider, token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, entity.RoleServiceProvider, claims.Role)
	assert.Equal(t, 3, claims.TokenVersion)
}

func TestJWTService_SessionIsRoleScoped(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	token, _, err := svc.IssueSession(entity.RoleConsumer, uuid.New(), 0)
	require.NoError(t, err)

	for _, role := range []entity.Role{entity.RoleServiceProvider, entity.RoleAdmin} {
		_, err := svc.ValidateSession(role, token)
		assert.Error(t, err, "consumer token accepted for %s", role)
	}
}

func TestJWTService_ResetTokenIsNotASession(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	accountID := uuid.New()
	reset, err := svc.IssueReset(entity.RoleConsumer, accountID, 1)
	require.NoError(t, err)

	claims, err := svc.ValidateReset(entity.RoleConsumer, reset)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.TokenVersion)

	_, err = svc.ValidateReset(entity.RoleAdmin, reset)
	assert.Error(t, err)

	_, err = svc.ValidateSession(entity.RoleConsumer, reset)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := svc.IssueSession(entity.RoleAdmin, uuid.New(), 0)
	require.NoError(t, err)

	impl.now = time.Now
	_, err = svc.ValidateSession(entity.RoleAdmin, token)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := svc.ValidateSession(entity.RoleConsumer, "clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestNewJWTService_RequiresAllSecrets(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Admin = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
