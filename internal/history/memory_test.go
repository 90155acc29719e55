package history

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symptomcheck/internal/models"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestMemory_SeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Seed(ctx, "", models.DefaultSeed(), t0))
	require.NoError(t, m.Seed(ctx, "", models.DefaultSeed(), t0.Add(time.Hour)))

	records, err := m.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "headache", records[0].Keyword)
	assert.Equal(t, int64(3), records[0].SearchCount)
	assert.Equal(t, t0.Add(-24*time.Hour), records[0].LastSearched)
	assert.Equal(t, "fatigue", records[1].Keyword)
	assert.Equal(t, t0.Add(-48*time.Hour), records[1].LastSearched)
}

func TestMemory_TouchMissingCreatesNothing(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Touch(ctx, "", "fever", t0)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Seed(ctx, "", models.DefaultSeed(), t0))
	_, err = m.Touch(ctx, "", "fever", t0)
	assert.ErrorIs(t, err, ErrNotFound)

	records, err := m.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestMemory_TouchIncrements(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Seed(ctx, "", []models.SeedRecord{{Keyword: "headache"}}, t0))

	var rec *models.SearchRecord
	var err error
	for i := 1; i <= 3; i++ {
		rec, err = m.Touch(ctx, "", "headache", t0.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
	}

	assert.Equal(t, int64(3), rec.SearchCount)
	assert.Equal(t, t0.Add(3*time.Minute), rec.LastSearched)
}

func TestMemory_TimestampNeverMovesBackwards(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Record(ctx, "", "cough", t0)
	require.NoError(t, err)
	rec, err := m.Touch(ctx, "", "cough", t0.Add(-time.Hour))
	require.NoError(t, err)

	assert.Equal(t, int64(2), rec.SearchCount)
	assert.Equal(t, t0, rec.LastSearched)
}

func TestMemory_RecordCreatesThenIncrements(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	first, err := m.Record(ctx, "alice", "cough", t0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.SearchCount)

	second, err := m.Record(ctx, "alice", "cough", t0.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(2), second.SearchCount)
}

func TestMemory_OwnersAreIsolated(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Record(ctx, "alice", "cough", t0)
	require.NoError(t, err)
	_, err = m.Record(ctx, "bob", "fever", t0)
	require.NoError(t, err)

	alice, err := m.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, alice, 1)
	assert.Equal(t, "cough", alice[0].Keyword)

	empty, err := m.List(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, empty)

	owners, err := m.Owners(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, owners)
}

func TestMemory_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	_, err := m.Record(ctx, "", "cough", t0)
	require.NoError(t, err)

	records, err := m.List(ctx, "")
	require.NoError(t, err)
	records[0].SearchCount = 99

	again, err := m.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), again[0].SearchCount)
}

func TestMemory_ConcurrentTouch(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Seed(ctx, "", []models.SeedRecord{{Keyword: "headache"}}, t0))

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = m.Touch(ctx, "", "headache", t0)
		}()
	}
	wg.Wait()

	records, err := m.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(workers), records[0].SearchCount)
}

func TestLatest(t *testing.T) {
	assert.Equal(t, t0, Latest(t0, t0.Add(-time.Second)))
	assert.Equal(t, t0.Add(time.Second), Latest(t0, t0.Add(time.Second)))
}
