// README: Query store contract and the default in-process implementation.
package query

import (
	"context"
	"sync"
)

// Store is an append-only, insertion-ordered log of records.
type Store interface {
	// Append assigns the next id (count + 1) and returns the stored record.
	Append(ctx context.Context, r Record) (Record, error)
	// List returns every record oldest first. The slice is never nil.
	List(ctx context.Context) ([]Record, error)
}

// MemoryStore keeps records for the lifetime of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, r Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = len(s.records) + 1
	s.records = append(s.records, r)
	return r, nil
}

func (s *MemoryStore) List(_ context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out, nil
}
