package db_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symptomcheck/internal/history"
	"symptomcheck/internal/models"
	"symptomcheck/internal/testutil"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestSeed_IsIdempotent(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, database.Seed(ctx, "", models.DefaultSeed(), t0))
	require.NoError(t, database.Seed(ctx, "", models.DefaultSeed(), t0.Add(time.Hour)))

	records, err := database.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "headache", records[0].Keyword)
	assert.Equal(t, int64(3), records[0].SearchCount)
	assert.True(t, records[0].LastSearched.Equal(t0.Add(-24*time.Hour)))
	assert.Equal(t, "fatigue", records[1].Keyword)
}

func TestTouch_MissingRecord(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()

	_, err := database.Touch(ctx, "", "fever", t0)
	assert.ErrorIs(t, err, history.ErrNotFound)
	assert.Equal(t, 0, testutil.CountSearches(t, database, ""))
}

func TestTouch_Increments(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, database.Seed(ctx, "", []models.SeedRecord{{Keyword: "headache"}}, t0))

	var rec *models.SearchRecord
	var err error
	for i := 1; i <= 3; i++ {
		rec, err = database.Touch(ctx, "", "headache", t0.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
	}
	assert.Equal(t, int64(3), rec.SearchCount)
	assert.True(t, rec.LastSearched.Equal(t0.Add(3*time.Minute)))

	// An older timestamp never moves the record backwards.
	rec, err = database.Touch(ctx, "", "headache", t0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), rec.SearchCount)
	assert.True(t, rec.LastSearched.Equal(t0.Add(3*time.Minute)))
}

func TestRecord_Upserts(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()

	first, err := database.Record(ctx, "alice", "cough", t0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.SearchCount)

	second, err := database.Record(ctx, "alice", "cough", t0.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(2), second.SearchCount)
	assert.Equal(t, 1, testutil.CountSearches(t, database, "alice"))
}

func TestListAndOwners(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()

	_, err := database.Record(ctx, "alice", "cough", t0)
	require.NoError(t, err)
	_, err = database.Record(ctx, "bob", "fever", t0)
	require.NoError(t, err)
	_, err = database.Record(ctx, "alice", "fatigue", t0)
	require.NoError(t, err)

	alice, err := database.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, alice, 2)
	assert.Equal(t, "cough", alice[0].Keyword)
	assert.Equal(t, "fatigue", alice[1].Keyword)

	empty, err := database.List(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, empty)

	owners, err := database.Owners(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, owners)
}

func TestTouch_Concurrent(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, database.Seed(ctx, "", []models.SeedRecord{{Keyword: "headache"}}, t0))

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = database.Touch(ctx, "", "headache", t0)
		}()
	}
	wg.Wait()

	records, err := database.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(workers), records[0].SearchCount)
}
