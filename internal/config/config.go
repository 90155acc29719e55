package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"symptomcheck/internal/validation"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string `envconfig:"ENV" default:"development"`

	// Server
	ServerAddr string `envconfig:"SERVER_ADDR" default:":3000"`
	BaseURL    string `envconfig:"BASE_URL" default:"http://localhost:3000"`

	// Database. Empty keeps search history in memory.
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// Redis backs the rate limiter and sessions when set.
	RedisURL string `envconfig:"REDIS_URL"`

	// TLS
	TLSEnabled  bool   `envconfig:"TLS_ENABLED"`
	TLSCertFile string `envconfig:"TLS_CERT_FILE"`
	TLSKeyFile  string `envconfig:"TLS_KEY_FILE"`

	// OIDC
	OIDCIssuer       string `envconfig:"OIDC_ISSUER"`
	OIDCClientID     string `envconfig:"OIDC_CLIENT_ID"`
	OIDCClientSecret string `envconfig:"OIDC_CLIENT_SECRET"`
	OIDCRedirectURL  string `envconfig:"OIDC_REDIRECT_URL" default:"http://localhost:3000/auth/callback"`

	// Session
	SessionSecret string `envconfig:"SESSION_SECRET" default:"change-me-in-production-min-32-chars"`

	// CORS, comma-separated
	CORSOrigins string `envconfig:"CORS_ORIGINS"`

	// Rate limiting, requests per minute per IP
	RateLimitMax int `envconfig:"RATE_LIMIT_MAX" default:"100"`

	// Symptom checker
	CatalogFile        string        `envconfig:"CATALOG_FILE"`
	RecurringThreshold int           `envconfig:"RECURRING_THRESHOLD" default:"3"`
	SeedHistory        bool          `envconfig:"SEED_HISTORY" default:"true"`
	AdvisoryInterval   time.Duration `envconfig:"ADVISORY_INTERVAL" default:"1m"`

	// Error reporting. Empty DSN disables Sentry.
	SentryDSN              string  `envconfig:"SENTRY_DSN"`
	SentryTracesSampleRate float64 `envconfig:"SENTRY_TRACES_SAMPLE_RATE" default:"0"`
}

// Load reads configuration from the environment, after an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("SYMPTOMS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values envconfig cannot check on its own.
func (c *Config) Validate() error {
	if c.RecurringThreshold < 1 {
		return fmt.Errorf("RECURRING_THRESHOLD must be at least 1, got %d", c.RecurringThreshold)
	}
	if c.RateLimitMax < 1 {
		return fmt.Errorf("RATE_LIMIT_MAX must be at least 1, got %d", c.RateLimitMax)
	}
	if c.AdvisoryInterval <= 0 {
		return fmt.Errorf("ADVISORY_INTERVAL must be positive, got %s", c.AdvisoryInterval)
	}
	if c.IsOIDCEnabled() {
		if c.OIDCClientID == "" {
			return fmt.Errorf("OIDC_CLIENT_ID is required when OIDC_ISSUER is set")
		}
		if ok, msg := validation.ValidateURL(c.OIDCRedirectURL); !ok {
			return fmt.Errorf("OIDC_REDIRECT_URL: %s", msg)
		}
		if len(c.SessionSecret) < 32 {
			return fmt.Errorf("SESSION_SECRET must be at least 32 characters")
		}
	}
	if c.TLSEnabled && (c.TLSCertFile == "" || c.TLSKeyFile == "") {
		return fmt.Errorf("TLS_CERT_FILE and TLS_KEY_FILE are required when TLS_ENABLED is set")
	}
	return nil
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsOIDCEnabled returns true if an OIDC issuer is configured.
func (c *Config) IsOIDCEnabled() bool {
	return c.OIDCIssuer != ""
}

// HasDatabase returns true if history should be stored in Postgres.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// HasRedis returns true if the rate limiter should use Redis.
func (c *Config) HasRedis() bool {
	return c.RedisURL != ""
}

// AllowedOrigins returns the CORS origins, defaulting to the base URL.
func (c *Config) AllowedOrigins() []string {
	origins := c.BaseURL
	if c.CORSOrigins != "" {
		origins = c.CORSOrigins
	}
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
