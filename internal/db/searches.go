package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"symptomcheck/internal/history"
	"symptomcheck/internal/models"
)

var _ history.Store = (*DB)(nil)

// Seed inserts seed records that do not exist yet for the owner.
func (d *DB) Seed(ctx context.Context, owner string, seed []models.SeedRecord, now time.Time) error {
	query := `
		INSERT INTO symptom_searches (id, owner, keyword, search_count, last_searched)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (owner, keyword) DO NOTHING
	`

	for _, s := range seed {
		if _, err := d.Pool.Exec(ctx, query, uuid.New(), owner, s.Keyword, s.SearchCount, now.Add(-s.Age)); err != nil {
			return fmt.Errorf("failed to seed search %s: %w", s.Keyword, err)
		}
	}

	return nil
}

// Touch increments an existing search record. It never inserts.
func (d *DB) Touch(ctx context.Context, owner, keyword string, at time.Time) (*models.SearchRecord, error) {
	rec := &models.SearchRecord{}
	err := d.Pool.QueryRow(ctx, `
		UPDATE symptom_searches
		SET search_count = search_count + 1, last_searched = GREATEST(last_searched, $3::timestamptz)
		WHERE owner = $1 AND keyword = $2
		RETURNING id, keyword, search_count, last_searched
	`, owner, keyword, at).Scan(&rec.ID, &rec.Keyword, &rec.SearchCount, &rec.LastSearched)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, history.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update search: %w", err)
	}
	return rec, nil
}

// Record upserts a search record, creating it with a count of 1.
func (d *DB) Record(ctx context.Context, owner, keyword string, at time.Time) (*models.SearchRecord, error) {
	rec := &models.SearchRecord{}
	err := d.Pool.QueryRow(ctx, `
		INSERT INTO symptom_searches (id, owner, keyword, search_count, last_searched)
		VALUES ($1, $2, $3, 1, $4)
		ON CONFLICT (owner, keyword) DO UPDATE
		SET search_count = symptom_searches.search_count + 1,
		    last_searched = GREATEST(symptom_searches.last_searched, EXCLUDED.last_searched)
		RETURNING id, keyword, search_count, last_searched
	`, uuid.New(), owner, keyword, at).Scan(&rec.ID, &rec.Keyword, &rec.SearchCount, &rec.LastSearched)
	if err != nil {
		return nil, fmt.Errorf("failed to record search: %w", err)
	}
	return rec, nil
}

// List returns an owner's search records in insertion order.
func (d *DB) List(ctx context.Context, owner string) ([]models.SearchRecord, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, keyword, search_count, last_searched
		FROM symptom_searches
		WHERE owner = $1
		ORDER BY seq ASC
	`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.SearchRecord{}
	for rows.Next() {
		var r models.SearchRecord
		if err := rows.Scan(&r.ID, &r.Keyword, &r.SearchCount, &r.LastSearched); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Owners returns every owner with at least one search record.
func (d *DB) Owners(ctx context.Context) ([]string, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT owner FROM symptom_searches
		GROUP BY owner
		ORDER BY MIN(seq) ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var owners []string
	for rows.Next() {
		var owner string
		if err := rows.Scan(&owner); err != nil {
			return nil, err
		}
		owners = append(owners, owner)
	}
	return owners, rows.Err()
}
