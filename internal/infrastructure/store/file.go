// internal/infrastructure/store/file.go
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// FileStore persists all keys as one JSON object in a single file.
// Durability matches the browser-profile contract: one file, no
// expiry, no size bound, single-process assumption. Every write
// rewrites the whole file, mirroring the wholesale state replacement
// of the consumers.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]json.RawMessage
	logger *logrus.Logger
}

// NewFileStore opens (or creates) the store file at path. A corrupt
// file is logged and treated as empty rather than failing startup.
func NewFileStore(path string, logger *logrus.Logger) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	s := &FileStore{
		path:   path,
		values: make(map[string]json.RawMessage),
		logger: logger,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		logger.WithError(err).WithField("path", path).
			Warn("Malformed preference store file, starting empty")
		s.values = make(map[string]json.RawMessage)
	}

	return s, nil
}

func (s *FileStore) Read(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (s *FileStore) Write(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !json.Valid(value) {
		return fmt.Errorf("store value for %q is not valid JSON", key)
	}

	stored := make(json.RawMessage, len(value))
	copy(stored, value)
	s.values[key] = stored
	return s.flush()
}

func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.flush()
}

// flush rewrites the file. Caller holds the lock.
func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
