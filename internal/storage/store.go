package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Keys used by the application. Each key maps to one JSON document;
// there is no schema versioning, so format changes are breaking.
const (
	KeyCurrentUser = "current_user"
	KeyUsers       = "users"
	KeyHistory     = "audit_history"
	KeyBranding    = "branding"
)

// Store is a generic get/set/remove key-value adapter. Values are
// JSON-serialized under a distinct key each.
type Store interface {
	// Get unmarshals the value stored under key into v. It returns false
	// when the key is absent. A value that fails to parse is treated as
	// absent rather than propagated.
	Get(key string, v interface{}) (bool, error)
	Set(key string, v interface{}) error
	Remove(key string) error
}

// FileStore implements Store with one JSON file per key under a data
// directory. Access discipline is read-modify-write with no cross-process
// locking; concurrent writers race and the last writer wins.
type FileStore struct {
	dir    string
	logger *zap.Logger
	mu     sync.Mutex
}

// NewFileStore creates the data directory if needed and returns a store.
func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string, v interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %q: %w", key, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		// Corrupt persisted state is discarded for this read, not surfaced.
		s.logger.Warn("Discarding corrupt stored value",
			zap.String("key", key),
			zap.Error(err))
		return false, nil
	}

	return true, nil
}

func (s *FileStore) Set(key string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %q: %w", key, err)
	}

	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}

	return nil
}

func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}

	return nil
}
