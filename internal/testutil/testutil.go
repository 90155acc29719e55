// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"os"
	"testing"

	"symptomcheck/internal/db"
)

// TestDB creates a test database connection and returns a cleanup function.
// Uses the TEST_DATABASE_URL environment variable and skips the test when it
// is unset.
func TestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()

	connString := os.Getenv("TEST_DATABASE_URL")
	if connString == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	ctx := context.Background()
	database, err := db.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.RunMigrations(connString); err != nil {
		database.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Start from an empty table
	cleanupTestData(ctx, database)

	cleanup := func() {
		cleanupTestData(ctx, database)
		database.Close()
	}

	return database, cleanup
}

// cleanupTestData removes all test data from the database.
func cleanupTestData(ctx context.Context, database *db.DB) {
	database.Pool.Exec(ctx, "DELETE FROM symptom_searches")
}

// CountSearches returns the number of stored search records for an owner.
func CountSearches(t *testing.T, database *db.DB, owner string) int {
	t.Helper()

	var n int
	err := database.Pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM symptom_searches WHERE owner = $1`, owner).Scan(&n)
	if err != nil {
		t.Fatalf("failed to count searches: %v", err)
	}
	return n
}
