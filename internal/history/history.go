// Package history stores per-owner symptom search records.
package history

import (
	"context"
	"errors"
	"time"

	"symptomcheck/internal/models"
)

// ErrNotFound is returned by Touch when no record exists for the keyword.
var ErrNotFound = errors.New("search record not found")

// Store persists search records. Keywords passed to a Store are already
// normalized. Implementations must be safe for concurrent use and must keep
// at most one record per (owner, keyword).
type Store interface {
	// Seed creates each record that does not exist yet. Existing records are left alone.
	Seed(ctx context.Context, owner string, seed []models.SeedRecord, now time.Time) error
	// Touch increments an existing record and moves its timestamp forward to at.
	// It returns ErrNotFound and creates nothing when no record exists.
	Touch(ctx context.Context, owner, keyword string, at time.Time) (*models.SearchRecord, error)
	// Record increments a record, creating it with a count of 1 if needed.
	Record(ctx context.Context, owner, keyword string, at time.Time) (*models.SearchRecord, error)
	// List returns an owner's records in insertion order.
	List(ctx context.Context, owner string) ([]models.SearchRecord, error)
	// Owners returns every owner with at least one record.
	Owners(ctx context.Context) ([]string, error)
}

// Latest returns whichever timestamp is later, so a record's last-searched
// time never moves backwards.
func Latest(current, at time.Time) time.Time {
	if at.Before(current) {
		return current
	}
	return at
}
