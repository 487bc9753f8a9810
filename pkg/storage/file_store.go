package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/heritagexp/heritage-explorer/pkg/logging"
)

// FileStore implements Store over an afero filesystem. Each key is kept in
// its own <dir>/<key>.json file, written atomically via a temp file rename.
// Writers are serialized per store; the system only ever has one logical
// writer per key so this is belt rather than braces.
type FileStore struct {
	fs  afero.Fs
	dir string

	mu sync.Mutex
}

// NewFileStore creates a FileStore rooted at dir on the given filesystem
func NewFileStore(fs afero.Fs, dir string) (*FileStore, error) {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &FileStore{fs: fs, dir: dir}, nil
}

// NewOsFileStore creates a FileStore on the host filesystem
func NewOsFileStore(dir string) (*FileStore, error) {
	return NewFileStore(afero.NewOsFs(), dir)
}

func (s *FileStore) keyPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get implements Store
func (s *FileStore) Get(key string, dest interface{}) error {
	data, err := afero.ReadFile(s.fs, s.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("reading %q: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decoding %q: %w", key, err)
	}
	return nil
}

// Put implements Store
func (s *FileStore) Put(key string, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Write to temp file then rename so readers never see a torn document
	path := s.keyPath(key)
	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("replacing %q: %w", key, err)
	}

	logging.App.Debug("Persisted value", "key", key, "bytes", len(data))
	return nil
}

// Exists implements Store
func (s *FileStore) Exists(key string) (bool, error) {
	_, err := s.fs.Stat(s.keyPath(key))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("stat %q: %w", key, err)
}
