package store

import (
	"context"
	"sync"
)

// memoryStore is an in-memory Store used when the database backend is
// unavailable, and in tests. Contents do not survive the process.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemory creates an empty in-memory Store.
func NewMemory() Store {
	return &memoryStore{entries: make(map[string]string)}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}
