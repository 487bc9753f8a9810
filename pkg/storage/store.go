// Package storage provides the persistent key-value store backing every
// state slice. Each key holds one independently valid JSON document.
package storage

import (
	"errors"

	"github.com/heritagexp/heritage-explorer/pkg/logging"
)

var (
	// ErrNotFound is returned when no value is stored under a key
	ErrNotFound = errors.New("key not found")
)

// Store represents a key-value store of JSON documents
type Store interface {
	// Get decodes the value stored under key into dest
	Get(key string, dest interface{}) error
	// Put encodes value and stores it under key, replacing any previous value
	Put(key string, value interface{}) error
	// Exists reports whether a value is stored under key
	Exists(key string) (bool, error)
}

// Load reads the value under key, falling back to fallback on absence,
// decode failure, or any other error. Failures are logged, never returned;
// the caller always gets a usable value.
func Load[T any](s Store, key string, fallback T) T {
	var v T
	err := s.Get(key, &v)
	if err == nil {
		return v
	}
	if !errors.Is(err, ErrNotFound) {
		logging.App.Warn("Falling back to default value", "key", key, "error", err)
	}
	return fallback
}
