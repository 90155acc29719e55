package observability

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog/log"
)

// SentryConfig holds the configuration for Sentry initialization.
type SentryConfig struct {
	DSN              string
	Environment      string
	TracesSampleRate float64
}

// InitSentry initializes Sentry error reporting.
// Returns a shutdown function to flush pending events.
// If DSN is empty, returns a no-op shutdown function.
func InitSentry(cfg SentryConfig) func() {
	if cfg.DSN == "" {
		return func() {}
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		EnableTracing:    cfg.TracesSampleRate > 0,
		TracesSampleRate: cfg.TracesSampleRate,
		ServerName:       ServiceName,
	})
	if err != nil {
		log.Warn().Err(err).Msg("sentry: failed to initialize, continuing without error reporting")
		return func() {}
	}

	log.Info().Str("environment", cfg.Environment).Msg("sentry: error reporting initialized")
	return func() {
		sentry.Flush(5 * time.Second)
	}
}

// CaptureError reports err to Sentry. It is a no-op when Sentry is not
// initialized.
func CaptureError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.CaptureException(err)
		return
	}
	sentry.CaptureException(err)
}
