package storage

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore implements Store using an in-memory map. Values round-trip
// through JSON so it behaves exactly like FileStore minus the filesystem.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates a new MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string][]byte),
	}
}

// Get implements Store
func (s *MemoryStore) Get(key string, dest interface{}) error {
	s.mu.RLock()
	data, ok := s.values[key]
	s.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decoding %q: %w", key, err)
	}
	return nil
}

// Put implements Store
func (s *MemoryStore) Put(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}

	s.mu.Lock()
	s.values[key] = data
	s.mu.Unlock()
	return nil
}

// Exists implements Store
func (s *MemoryStore) Exists(key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[key]
	return ok, nil
}

// Corrupt overwrites the raw bytes stored under key, for tests exercising
// decode-failure fallbacks.
func (s *MemoryStore) Corrupt(key string, raw []byte) {
	s.mu.Lock()
	s.values[key] = raw
	s.mu.Unlock()
}
