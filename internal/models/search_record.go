package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultRecurringThreshold is the search count at which a keyword is
// considered a recurring complaint.
const DefaultRecurringThreshold = 3

// SearchRecord is the per-keyword lookup history entry.
type SearchRecord struct {
	ID           uuid.UUID `json:"id"`
	Keyword      string    `json:"keyword"`
	SearchCount  int64     `json:"searchCount"`
	LastSearched time.Time `json:"lastSearched"`
}

// IsRecurring returns true if the record has been searched at least threshold times.
func (r *SearchRecord) IsRecurring(threshold int) bool {
	return r.SearchCount >= int64(threshold)
}

// SeedRecord describes a history entry present before any lookup happens.
type SeedRecord struct {
	Keyword     string
	SearchCount int64
	Age         time.Duration // how long before startup it was last searched
}

// DefaultSeed mirrors the demo history the dashboard ships with.
func DefaultSeed() []SeedRecord {
	return []SeedRecord{
		{Keyword: "headache", SearchCount: 3, Age: 24 * time.Hour},
		{Keyword: "fatigue", SearchCount: 2, Age: 48 * time.Hour},
	}
}

// Search outcome constants
const (
	OutcomeMatched  = "matched"
	OutcomeNoMatch  = "no_match"
	OutcomeTooShort = "too_short"
)
