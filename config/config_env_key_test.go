package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"serviceProvider": "",
		},
		"mail": map[string]any{
			"smtp": map[string]any{
				"host": "",
			},
		},
		"media": map[string]any{
			"publicBaseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_SERVICEPROVIDER", want: "secretKey.serviceProvider"},
		{envKey: "MAIL_SMTP_HOST", want: "mail.smtp.host"},
		{envKey: "MEDIA_PUBLICBASEURL", want: "media.publicBaseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func validSecrets() SecretKeyConfig {
	return SecretKeyConfig{
		Consumer:        "consumer-secret",
		ServiceProvider: "provider-secret",
		Admin:           "admin-secret",
		Reset:           "reset-secret",
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{SecretKey: validSecrets()}
	require.NoError(t, cfg.Validate())

	missing := &Config{SecretKey: validSecrets()}
	missing.SecretKey.Admin = " "
	err := missing.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secretKey.admin")

	shared := &Config{SecretKey: validSecrets()}
	shared.SecretKey.Admin = shared.SecretKey.Consumer
	err = shared.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not share a signing key")
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{Metrics: &MetricsConfig{Enabled: true}}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DefaultSessionTTL, cfg.Session.TTL)
	assert.Equal(t, DefaultResetTTL, cfg.Session.ResetTTL)
	assert.True(t, cfg.Session.Secure)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, "log", cfg.Mail.Provider)
	assert.Equal(t, "mem", cfg.Media.Provider)
	assert.Equal(t, 50, cfg.Outbox.BatchSize)
	assert.Equal(t, 10, cfg.Outbox.MaxAttempts)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
}
