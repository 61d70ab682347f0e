package slug

import (
	"context"
	"sync"
)

// MemoryStore implements Store in process memory.
// Reservations are lost on restart; use it for tests and single-process batches.
type MemoryStore struct {
	mu    sync.Mutex
	taken map[string]map[string]struct{}
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{taken: make(map[string]map[string]struct{})}
}

// Reserve marks slug as taken in scope. It returns false if it already was.
func (s *MemoryStore) Reserve(ctx context.Context, scope, slug string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.taken[scope]
	if !ok {
		set = make(map[string]struct{})
		s.taken[scope] = set
	}
	if _, exists := set[slug]; exists {
		return false, nil
	}
	set[slug] = struct{}{}
	return true, nil
}

// Release frees slug in scope. Releasing a free slug is a no-op.
func (s *MemoryStore) Release(ctx context.Context, scope, slug string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if set, ok := s.taken[scope]; ok {
		delete(set, slug)
		if len(set) == 0 {
			delete(s.taken, scope)
		}
	}
	return nil
}

// Len returns the number of slugs taken in scope.
func (s *MemoryStore) Len(scope string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.taken[scope])
}

// Reset drops every reservation.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taken = make(map[string]map[string]struct{})
}
