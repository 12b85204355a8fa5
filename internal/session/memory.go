package session

import (
	"context"
	"errors"
	"sync"
)

// MemoryStore is an in-memory Store for tests and local development.
// It ignores TTLs; entries live until deleted or the process exits.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailSets makes every Set return an error, for exercising
	// persistence-failure paths in tests
	FailSets bool
}

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get returns the value stored under key
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}

	// Copy so callers cannot mutate the stored value
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Set stores value under key
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	if s.FailSets {
		return errSetFailed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

// Delete removes key from the store
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Health always succeeds for the in-memory store
func (s *MemoryStore) Health(ctx context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}

var errSetFailed = errors.New("memory store: set failed")
