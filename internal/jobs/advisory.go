package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"symptomcheck/internal/history"
	"symptomcheck/internal/matcher"
)

// RecurringGauge receives the totals of each completed scan: owners with at
// least one recurring keyword, and recurring keywords across all owners.
type RecurringGauge interface {
	SetRecurring(owners, keywords int)
}

// AdvisoryScanner periodically looks for recurring complaints in every
// owner's history.
type AdvisoryScanner struct {
	store     history.Store
	gauge     RecurringGauge
	interval  time.Duration
	threshold int
	logger    zerolog.Logger
}

// NewAdvisoryScanner creates a new advisory scanner.
func NewAdvisoryScanner(store history.Store, gauge RecurringGauge, interval time.Duration, threshold int, logger zerolog.Logger) *AdvisoryScanner {
	return &AdvisoryScanner{
		store:     store,
		gauge:     gauge,
		interval:  interval,
		threshold: threshold,
		logger:    logger,
	}
}

// Start begins the background scan loop. It returns when ctx is cancelled.
func (s *AdvisoryScanner) Start(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Int("threshold", s.threshold).Msg("advisory scanner started")

	// Run immediately on start
	s.ScanAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("advisory scanner stopped")
			return
		case <-ticker.C:
			s.ScanAll(ctx)
		}
	}
}

// ScanAll scans every owner once and returns how many owners have at least
// one recurring keyword.
func (s *AdvisoryScanner) ScanAll(ctx context.Context) int {
	owners, err := s.store.Owners(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("advisory scanner: failed to list owners")
		return 0
	}

	flagged, keywords := 0, 0
	for _, owner := range owners {
		// Check context before each owner
		select {
		case <-ctx.Done():
			return flagged
		default:
		}

		records, err := s.store.List(ctx, owner)
		if err != nil {
			s.logger.Error().Err(err).Str("owner", owner).Msg("advisory scanner: failed to list history")
			continue
		}

		recurring := matcher.FilterRecurring(records, s.threshold)
		if len(recurring) == 0 {
			continue
		}

		flagged++
		keywords += len(recurring)
		s.logger.Info().
			Str("owner", owner).
			Str("keyword", recurring[0].Keyword).
			Int64("search_count", recurring[0].SearchCount).
			Int("recurring", len(recurring)).
			Msg("recurring symptom searches detected")
	}

	if s.gauge != nil {
		s.gauge.SetRecurring(flagged, keywords)
	}
	return flagged
}
