package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/TTMK7777/release-creator/internal/domain/model"
)

const defaultInitialCapacity = 1024

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithInitialCapacity pre-sizes the record index.
func WithInitialCapacity(n int) Option {
	return func(s *MemoryStore) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// datasetKey identifies one record slot. Year labels are verbatim, so a
// plain year and a range label sharing a start year occupy distinct slots.
type datasetKey struct {
	category model.Category
	year     string
	company  string
}

// MemoryStore implements Store with a mutex-guarded map.
type MemoryStore struct {
	mu       sync.RWMutex
	records  map[datasetKey]model.RankingRecord
	capacity int
}

// NewMemoryStore creates an empty in-memory dataset store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{capacity: defaultInitialCapacity}
	for _, opt := range opts {
		opt(s)
	}
	s.records = make(map[datasetKey]model.RankingRecord, s.capacity)
	return s
}

// Add validates and stores each record. The first record for a slot wins;
// later arrivals for the same (category, year, company) are reported as
// duplicates, which keeps re-ingests of overlapping exports harmless.
func (s *MemoryStore) Add(_ context.Context, records []model.RankingRecord) (int, []model.Warning) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	var warnings []model.Warning
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			warnings = append(warnings, model.Warning{
				Code:    model.WarnInvalidRecord,
				Message: err.Error(),
				Year:    rec.Year,
				Company: rec.Company,
			})
			continue
		}
		key := datasetKey{category: rec.Category, year: rec.Year, company: rec.Company}
		if _, exists := s.records[key]; exists {
			warnings = append(warnings, model.Warning{
				Code: model.WarnDuplicateRecord,
				Message: fmt.Sprintf("record for %s in %s/%s already stored",
					rec.Company, rec.Category, rec.Year),
				Year:    rec.Year,
				Company: rec.Company,
			})
			continue
		}
		s.records[key] = rec
		added++
	}
	return added, warnings
}

// Snapshot copies the dataset. Order is unspecified; the engine sorts by
// its own rules, so map iteration order never leaks into results.
func (s *MemoryStore) Snapshot(_ context.Context) []model.RankingRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.RankingRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	return out
}

// Count returns the number of stored records.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Clear empties the dataset.
func (s *MemoryStore) Clear(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[datasetKey]model.RankingRecord, s.capacity)
}
