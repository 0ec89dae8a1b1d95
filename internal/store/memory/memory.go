// Package memory implements store.Store in process memory. It backs the
// server when no database is configured, and the server tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/alfredjeanlab/kundli/internal/idgen"
	"github.com/alfredjeanlab/kundli/internal/model"
	"github.com/alfredjeanlab/kundli/internal/store"
)

// MemoryStore is a map of charts guarded by a mutex. Records are copied on
// the way in and out.
type MemoryStore struct {
	mu     sync.RWMutex
	charts map[string]*model.ChartRecord
	byKey  map[string]string // birth key -> id
}

// Compile-time check that MemoryStore implements store.Store.
var _ store.Store = (*MemoryStore)(nil)

// New returns an empty store.
func New() *MemoryStore {
	return &MemoryStore{
		charts: make(map[string]*model.ChartRecord),
		byKey:  make(map[string]string),
	}
}

func (s *MemoryStore) SaveChart(ctx context.Context, rec *model.ChartRecord) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := rec.BirthKey()
	if id, ok := s.byKey[key]; ok {
		existing := s.charts[id]
		existing.Name = rec.Name
		existing.UpdatedAt = rec.UpdatedAt
		return id, true, nil
	}

	if rec.ID == "" {
		id, err := idgen.NewChartID()
		if err != nil {
			return "", false, err
		}
		rec.ID = id
	}
	cp := *rec
	s.charts[cp.ID] = &cp
	s.byKey[key] = cp.ID
	return cp.ID, false, nil
}

func (s *MemoryStore) GetChart(ctx context.Context, id string) (*model.ChartRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.charts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (s *MemoryStore) ListCharts(ctx context.Context, filter model.ChartFilter) ([]*model.ChartRecord, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	filter = filter.Normalized()
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	s.mu.RLock()
	matched := make([]*model.ChartRecord, 0, len(s.charts))
	for _, rec := range s.charts {
		if search != "" &&
			!strings.Contains(strings.ToLower(rec.Name), search) &&
			!strings.Contains(strings.ToLower(rec.City), search) {
			continue
		}
		cp := *rec
		matched = append(matched, &cp)
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)
	if filter.Offset >= total {
		return []*model.ChartRecord{}, total, nil
	}
	end := min(filter.Offset+filter.Limit, total)
	return matched[filter.Offset:end], total, nil
}

func (s *MemoryStore) DeleteChart(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.charts[id]
	if !ok {
		return store.ErrNotFound
	}
	delete(s.byKey, rec.BirthKey())
	delete(s.charts, id)
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
