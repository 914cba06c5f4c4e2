package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndEnvOverrides(t *testing.T) {
	t.Setenv("STOCKWATCH_DATABASE_URL", "postgres://localhost/stockwatch_test")
	t.Setenv("STOCKWATCH_AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 10, cfg.Alerts.Threshold)
	assert.False(t, cfg.Alerts.SuppressRepeats)
	assert.Equal(t, "gemini-1.5-flash", cfg.Assistant.Model)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.Assistant.BaseURL)
	assert.Equal(t, float64(1), cfg.RateLimit.PerSecond)
	assert.Equal(t, 3, cfg.RateLimit.Burst)

	assert.Equal(t, "postgres://localhost/stockwatch_test", cfg.Database.URL)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
}

func TestLoad_ThresholdFromEnv(t *testing.T) {
	t.Setenv("STOCKWATCH_DATABASE_URL", "postgres://localhost/stockwatch_test")
	t.Setenv("STOCKWATCH_AUTH_JWT_SECRET", "test-secret")
	t.Setenv("STOCKWATCH_ALERTS_THRESHOLD", "25")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Alerts.Threshold)
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("STOCKWATCH_DATABASE_URL", "")
	t.Setenv("STOCKWATCH_AUTH_JWT_SECRET", "test-secret")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database URL")
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("STOCKWATCH_DATABASE_URL", "postgres://localhost/stockwatch_test")
	t.Setenv("STOCKWATCH_AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestLoad_RecipientRequiredWithSMTP(t *testing.T) {
	t.Setenv("STOCKWATCH_DATABASE_URL", "postgres://localhost/stockwatch_test")
	t.Setenv("STOCKWATCH_AUTH_JWT_SECRET", "test-secret")
	t.Setenv("STOCKWATCH_SMTP_SERVER", "smtp.example.com")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipient")

	t.Setenv("STOCKWATCH_ALERTS_RECIPIENT", "alerts@example.com")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "alerts@example.com", cfg.Alerts.Recipient)
}
