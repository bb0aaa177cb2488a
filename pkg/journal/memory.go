package journal

import (
	"context"
	"sync"
)

// DefaultMaxEntries is the per-session retention used when none is configured.
const DefaultMaxEntries = 1000

// MemoryStore keeps entries in process memory. It is meant for tests and
// single-process tools.
type MemoryStore struct {
	mu         sync.RWMutex
	entries    map[string][]Entry
	maxEntries int
}

// NewMemoryStore creates a store keeping at most maxEntries per session.
// A non-positive value selects DefaultMaxEntries.
func NewMemoryStore(maxEntries int) *MemoryStore {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryStore{
		entries:    make(map[string][]Entry),
		maxEntries: maxEntries,
	}
}

func (s *MemoryStore) Record(_ context.Context, e Entry) error {
	if err := validate(e); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := append(s.entries[e.SessionID], e)
	if len(list) > s.maxEntries {
		list = list[len(list)-s.maxEntries:]
	}
	s.entries[e.SessionID] = list
	return nil
}

func (s *MemoryStore) List(_ context.Context, sessionID string, limit int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.entries[sessionID]
	if limit <= 0 || limit > len(list) {
		limit = len(list)
	}
	out := make([]Entry, 0, limit)
	for i := len(list) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, list[i])
	}
	return out, nil
}
