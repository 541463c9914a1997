package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is read once at process start.
type Config struct {
	Env  string
	Port string

	DatabaseURL string

	LogLevel             string
	LogFormat            string
	SlowRequestThreshold time.Duration

	JWTSecret            string
	SessionTTL           time.Duration
	SessionPurgeSchedule string
	AdminUsername        string
	AdminPassword        string

	CORSAllowOrigins []string

	WebhookBaseURL string
	WebhookTimeout time.Duration

	Twilio TwilioConfig
}

// TwilioConfig configures the optional WhatsApp lead alert.
type TwilioConfig struct {
	AccountSID   string
	AuthToken    string
	WhatsAppFrom string
	AlertTo      string
}

// Enabled reports whether every setting the alert needs is present.
func (t TwilioConfig) Enabled() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.WhatsAppFrom != "" && t.AlertTo != ""
}

// LoadEnvFile loads .env into the process environment. A missing file is
// reported but not fatal.
func LoadEnvFile() error {
	return godotenv.Load()
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SLOW_REQUEST_THRESHOLD", "200ms")
	v.SetDefault("JWT_EXPIRY_HOURS", 24)
	v.SetDefault("SESSION_PURGE_SCHEDULE", "@hourly")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("WEBHOOK_TIMEOUT", "5s")

	cfg := &Config{
		Env:  v.GetString("APP_ENV"),
		Port: v.GetString("PORT"),

		DatabaseURL: v.GetString("DATABASE_URL"),

		LogLevel:             v.GetString("LOG_LEVEL"),
		LogFormat:            v.GetString("LOG_FORMAT"),
		SlowRequestThreshold: v.GetDuration("SLOW_REQUEST_THRESHOLD"),

		JWTSecret:            v.GetString("JWT_SECRET"),
		SessionTTL:           time.Duration(v.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		SessionPurgeSchedule: v.GetString("SESSION_PURGE_SCHEDULE"),
		AdminUsername:        v.GetString("ADMIN_USERNAME"),
		AdminPassword:        v.GetString("ADMIN_PASSWORD"),

		CORSAllowOrigins: splitList(v.GetString("CORS_ALLOW_ORIGINS")),

		WebhookBaseURL: strings.TrimRight(v.GetString("WEBHOOK_BASE_URL"), "/"),
		WebhookTimeout: v.GetDuration("WEBHOOK_TIMEOUT"),

		Twilio: TwilioConfig{
			AccountSID:   v.GetString("TWILIO_ACCOUNT_SID"),
			AuthToken:    v.GetString("TWILIO_AUTH_TOKEN"),
			WhatsAppFrom: v.GetString("TWILIO_WHATSAPP_FROM"),
			AlertTo:      v.GetString("LEAD_ALERT_TO"),
		},
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
		if cfg.Env == "production" {
			cfg.LogFormat = "json"
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	if cfg.SessionTTL <= 0 {
		return nil, errors.New("JWT_EXPIRY_HOURS must be positive")
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
