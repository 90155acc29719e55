// Package matcher looks up ailments for free-text symptom queries and keeps
// the per-owner search history used to flag recurring complaints.
package matcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"symptomcheck/internal/catalog"
	"symptomcheck/internal/history"
	"symptomcheck/internal/models"
	"symptomcheck/internal/validation"
)

// ErrInvalidKeyword is returned by Record for keywords that fail validation.
var ErrInvalidKeyword = errors.New("invalid keyword")

// Observer is notified of every search outcome.
type Observer interface {
	ObserveSearch(outcome string)
}

// Matcher pairs the immutable catalog with a history store.
type Matcher struct {
	catalog  *catalog.Catalog
	store    history.Store
	seed     []models.SeedRecord
	now      func() time.Time
	observer Observer
	logger   zerolog.Logger

	seeded sync.Map // owner -> struct{}
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithSeed sets the records every owner's history starts with.
func WithSeed(seed []models.SeedRecord) Option {
	return func(m *Matcher) { m.seed = seed }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Matcher) { m.now = now }
}

// WithObserver reports search outcomes to o.
func WithObserver(o Observer) Option {
	return func(m *Matcher) { m.observer = o }
}

// WithLogger sets the logger used for history failures.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Matcher) { m.logger = l }
}

// New creates a matcher over c that keeps history in store.
func New(c *catalog.Catalog, store history.Store, opts ...Option) *Matcher {
	m := &Matcher{
		catalog: c,
		store:   store,
		now:     time.Now,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Catalog returns the reference catalog.
func (m *Matcher) Catalog() *catalog.Catalog {
	return m.catalog
}

// ensureSeeded seeds an owner's history the first time the owner is seen.
// Seeding is idempotent, so two racing first requests are harmless.
func (m *Matcher) ensureSeeded(ctx context.Context, owner string) error {
	if len(m.seed) == 0 {
		return nil
	}
	if _, ok := m.seeded.Load(owner); ok {
		return nil
	}
	if err := m.store.Seed(ctx, owner, m.seed, m.now()); err != nil {
		return fmt.Errorf("failed to seed history: %w", err)
	}
	m.seeded.Store(owner, struct{}{})
	return nil
}

func (m *Matcher) observe(outcome string) {
	if m.observer != nil {
		m.observer.ObserveSearch(outcome)
	}
}

// Search returns the ailments whose keyword contains the normalized query or
// is contained by it. Queries shorter than two characters match nothing.
//
// When there are results and the owner already has a record for exactly the
// normalized query, that record's count and timestamp are bumped. A search
// never creates a record. The returned ailments are valid even when err is
// non-nil; err only reports a failed history update.
func (m *Matcher) Search(ctx context.Context, owner, query string) ([]models.Ailment, error) {
	normalized := validation.NormalizeQuery(query)
	if !validation.IsSearchable(normalized) {
		m.observe(models.OutcomeTooShort)
		return []models.Ailment{}, nil
	}

	results := m.catalog.Match(normalized)
	if len(results) == 0 {
		m.observe(models.OutcomeNoMatch)
		return []models.Ailment{}, nil
	}
	m.observe(models.OutcomeMatched)

	if err := m.ensureSeeded(ctx, owner); err != nil {
		return results, err
	}

	if _, err := m.store.Touch(ctx, owner, normalized, m.now()); err != nil && !errors.Is(err, history.ErrNotFound) {
		m.logger.Error().Err(err).Str("owner", owner).Str("keyword", normalized).Msg("failed to update search history")
		return results, fmt.Errorf("failed to update search history: %w", err)
	}

	return results, nil
}

// Record explicitly adds a keyword lookup to the owner's history, creating
// the record on first use.
func (m *Matcher) Record(ctx context.Context, owner, keyword string) (*models.SearchRecord, error) {
	normalized := validation.NormalizeQuery(keyword)
	if ok, msg := validation.ValidateKeyword(normalized); !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKeyword, msg)
	}

	if err := m.ensureSeeded(ctx, owner); err != nil {
		return nil, err
	}

	rec, err := m.store.Record(ctx, owner, normalized, m.now())
	if err != nil {
		return nil, fmt.Errorf("failed to record search: %w", err)
	}
	return rec, nil
}

// History returns the owner's search records in insertion order.
func (m *Matcher) History(ctx context.Context, owner string) ([]models.SearchRecord, error) {
	if err := m.ensureSeeded(ctx, owner); err != nil {
		return nil, err
	}
	records, err := m.store.List(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list search history: %w", err)
	}
	return records, nil
}

// Recurring returns the owner's records searched at least threshold times,
// in insertion order.
func (m *Matcher) Recurring(ctx context.Context, owner string, threshold int) ([]models.SearchRecord, error) {
	records, err := m.History(ctx, owner)
	if err != nil {
		return nil, err
	}
	return FilterRecurring(records, threshold), nil
}

// FilterRecurring keeps the records whose count is at least threshold.
func FilterRecurring(records []models.SearchRecord, threshold int) []models.SearchRecord {
	out := []models.SearchRecord{}
	for _, r := range records {
		if r.IsRecurring(threshold) {
			out = append(out, r)
		}
	}
	return out
}

// Advisory returns the user-facing warning for a list of recurring records,
// or an empty string when there are none.
func Advisory(recurring []models.SearchRecord) string {
	if len(recurring) == 0 {
		return ""
	}
	return fmt.Sprintf("You've searched for %q multiple times. "+
		"Consider consulting a healthcare professional if symptoms persist.", recurring[0].Keyword)
}
