package cart

import (
	"context"
	"sync"
)

// Store is the session backend capability the cart needs: fetch a session's
// entries, overwrite them, and drop the session entirely.
type Store interface {
	Get(ctx context.Context, sessionID string) (map[string]Entry, error)
	Set(ctx context.Context, sessionID string, entries map[string]Entry) error
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStore keeps carts in process memory. Used in tests and as a dev
// fallback when no backend is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]map[string]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]map[string]Entry)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (map[string]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries, ok := s.carts[sessionID]
	if !ok {
		return nil, nil
	}
	out := make(map[string]Entry, len(entries))
	for k, v := range entries {
		out[k] = v
	}
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, sessionID string, entries map[string]Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make(map[string]Entry, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	s.carts[sessionID] = copied
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
