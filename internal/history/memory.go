package history

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"symptomcheck/internal/models"
)

// Memory is a process-local Store guarded by a single mutex.
type Memory struct {
	mu     sync.Mutex
	owners map[string]*ownerHistory
	order  []string
}

type ownerHistory struct {
	records []*models.SearchRecord
	index   map[string]*models.SearchRecord
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{owners: make(map[string]*ownerHistory)}
}

// owner returns the history for an owner, creating it if needed. Callers hold mu.
func (m *Memory) owner(owner string) *ownerHistory {
	h, ok := m.owners[owner]
	if !ok {
		h = &ownerHistory{index: make(map[string]*models.SearchRecord)}
		m.owners[owner] = h
		m.order = append(m.order, owner)
	}
	return h
}

func (h *ownerHistory) add(keyword string, count int64, at time.Time) *models.SearchRecord {
	rec := &models.SearchRecord{
		ID:           uuid.New(),
		Keyword:      keyword,
		SearchCount:  count,
		LastSearched: at,
	}
	h.records = append(h.records, rec)
	h.index[keyword] = rec
	return rec
}

// Seed implements Store.
func (m *Memory) Seed(_ context.Context, owner string, seed []models.SeedRecord, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	h := m.owner(owner)
	for _, s := range seed {
		if _, exists := h.index[s.Keyword]; exists {
			continue
		}
		h.add(s.Keyword, s.SearchCount, now.Add(-s.Age))
	}
	return nil
}

// Touch implements Store.
func (m *Memory) Touch(_ context.Context, owner, keyword string, at time.Time) (*models.SearchRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.owners[owner]
	if !ok {
		return nil, ErrNotFound
	}
	rec, ok := h.index[keyword]
	if !ok {
		return nil, ErrNotFound
	}
	rec.SearchCount++
	rec.LastSearched = Latest(rec.LastSearched, at)

	out := *rec
	return &out, nil
}

// Record implements Store.
func (m *Memory) Record(_ context.Context, owner, keyword string, at time.Time) (*models.SearchRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h := m.owner(owner)
	rec, ok := h.index[keyword]
	if !ok {
		rec = h.add(keyword, 1, at)
	} else {
		rec.SearchCount++
		rec.LastSearched = Latest(rec.LastSearched, at)
	}

	out := *rec
	return &out, nil
}

// List implements Store.
func (m *Memory) List(_ context.Context, owner string) ([]models.SearchRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.owners[owner]
	if !ok {
		return []models.SearchRecord{}, nil
	}
	out := make([]models.SearchRecord, len(h.records))
	for i, rec := range h.records {
		out[i] = *rec
	}
	return out, nil
}

// Owners implements Store.
func (m *Memory) Owners(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []string
	for _, owner := range m.order {
		if len(m.owners[owner].records) > 0 {
			out = append(out, owner)
		}
	}
	return out, nil
}
