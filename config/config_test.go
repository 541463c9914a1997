package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/unovation")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 200*time.Millisecond, cfg.SlowRequestThreshold)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "@hourly", cfg.SessionPurgeSchedule)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CORSAllowOrigins)
	assert.Equal(t, 5*time.Second, cfg.WebhookTimeout)
	assert.Empty(t, cfg.WebhookBaseURL)
	assert.False(t, cfg.Twilio.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_EXPIRY_HOURS", "8")
	t.Setenv("WEBHOOK_BASE_URL", "https://hooks.example.com/webhook/")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://unovation.in , ,https://www.unovation.in")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "token")
	t.Setenv("TWILIO_WHATSAPP_FROM", "+14155238886")
	t.Setenv("LEAD_ALERT_TO", "+919800000000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 8*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "https://hooks.example.com/webhook", cfg.WebhookBaseURL)
	assert.Equal(t, []string{"https://unovation.in", "https://www.unovation.in"}, cfg.CORSAllowOrigins)
	assert.True(t, cfg.Twilio.Enabled())
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing database url", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("JWT_SECRET", "secret")
		_, err := Load()
		assert.ErrorContains(t, err, "DATABASE_URL")
	})
	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/unovation")
		t.Setenv("JWT_SECRET", "")
		_, err := Load()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})
	t.Run("non-positive expiry", func(t *testing.T) {
		setRequired(t)
		t.Setenv("JWT_EXPIRY_HOURS", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDialector(t *testing.T) {
	assert.IsType(t, &sqlite.Dialector{}, Dialector("sqlite:dev.db"))
	assert.IsType(t, &sqlite.Dialector{}, Dialector("file:dev.db?cache=shared"))
	assert.IsType(t, &postgres.Dialector{}, Dialector("postgres://localhost/unovation"))
}
