// Package state provides the state slice: one named, independently
// persisted unit of application state bound to a single store key.
package state

import (
	"sync"

	"github.com/heritagexp/heritage-explorer/pkg/logging"
	"github.com/heritagexp/heritage-explorer/pkg/storage"
)

// Slice binds a storage key to an in-memory value. It hydrates from the
// store on construction and re-persists the whole value on every mutation.
// Every durable entity in the system is backed by exactly one Slice.
type Slice[T any] struct {
	store storage.Store
	key   string

	mu    sync.RWMutex
	value T
}

// NewSlice creates a Slice for key, hydrating from the store or falling
// back to initial when nothing usable is persisted yet. The hydrated
// value is written back immediately, so seed data reaches the store on
// first construction rather than on first mutation.
func NewSlice[T any](store storage.Store, key string, initial T) *Slice[T] {
	s := &Slice[T]{
		store: store,
		key:   key,
		value: storage.Load(store, key, initial),
	}
	s.mu.Lock()
	s.persistLocked()
	s.mu.Unlock()
	return s
}

// Get returns the current value
func (s *Slice[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the value and persists it
func (s *Slice[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	s.persistLocked()
	s.mu.Unlock()
}

// Update applies fn to the current value, stores and persists the result,
// and returns it. The read-modify-write runs under the slice lock.
func (s *Slice[T]) Update(fn func(T) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = fn(s.value)
	s.persistLocked()
	return s.value
}

// Key returns the storage key the slice is bound to
func (s *Slice[T]) Key() string {
	return s.key
}

// persistLocked saves the current value. Persistence failures are logged
// and swallowed; the in-memory value stays authoritative for the session.
func (s *Slice[T]) persistLocked() {
	if err := s.store.Put(s.key, s.value); err != nil {
		logging.App.Error("Failed to persist state slice", "key", s.key, "error", err)
	}
}
