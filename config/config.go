package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// PlaceholderContactEmail is used as destination only when ContactEmailFallback is enabled.
const PlaceholderContactEmail = "your-email@example.com"

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	GinMode  string `envconfig:"GIN_MODE" default:"debug"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Email provider: resend, smtp or log
	EmailProvider string        `envconfig:"EMAIL_PROVIDER" default:"resend"`
	EmailTimeout  time.Duration `envconfig:"EMAIL_TIMEOUT" default:"10s"`
	ResendAPIKey  string        `envconfig:"RESEND_API_KEY"`
	ResendBaseURL string        `envconfig:"RESEND_BASE_URL"`
	// Destination mailbox for contact submissions
	ContactEmail         string `envconfig:"CONTACT_EMAIL"`
	ContactEmailFallback bool   `envconfig:"CONTACT_EMAIL_FALLBACK" default:"false"`
	ContactFrom          string `envconfig:"CONTACT_FROM" default:"お問い合わせ <onboarding@resend.dev>"`

	// SMTP Configuration (Brevo)
	SMTPHost     string `envconfig:"SMTP_HOST" default:"smtp-relay.brevo.com"`
	SMTPPort     string `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"SMTP_USERNAME"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`

	// Redis/Upstash Configuration
	UpstashRedisURL      string `envconfig:"UPSTASH_REDIS_URL"`
	UpstashRedisPassword string `envconfig:"UPSTASH_REDIS_PASSWORD"`

	// Rate Limiting Configuration
	ContactRateLimit  int           `envconfig:"CONTACT_RATE_LIMIT" default:"5"`
	ContactRateWindow time.Duration `envconfig:"CONTACT_RATE_WINDOW" default:"10m"`
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; missing file is fine in production
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	for i, origin := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimRight(strings.TrimSpace(origin), "/")
	}

	if cfg.ContactEmail == "" && !cfg.ContactEmailFallback {
		log.Println("WARNING: CONTACT_EMAIL is missing. Contact submissions will be rejected.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return &cfg, nil
}

// ContactRecipient returns the destination mailbox. The placeholder is only
// returned when the fallback is explicitly enabled.
func (c *Config) ContactRecipient() string {
	if c.ContactEmail != "" {
		return c.ContactEmail
	}
	if c.ContactEmailFallback {
		return PlaceholderContactEmail
	}
	return ""
}

func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}
