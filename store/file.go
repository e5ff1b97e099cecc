package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"shhplace/models"
)

// FileStore keeps the collection as JSON text in a single file. Saves go
// through a temp file plus rename so a crashed write never leaves a torn
// payload behind.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the given file path. The file does
// not need to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the collection. A missing file or unparseable payload is
// treated as absent data and returns an empty collection, not an error.
func (s *FileStore) Load() ([]models.Spot, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Spot{}, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", s.path, err)
	}

	var spots []models.Spot
	if err := json.Unmarshal(raw, &spots); err != nil {
		// Corrupt slot falls back to empty, matching the contract that a
		// mismatched payload must never crash the caller.
		return []models.Spot{}, nil
	}
	if spots == nil {
		spots = []models.Spot{}
	}
	return spots, nil
}

// Save serializes and atomically replaces the whole collection.
func (s *FileStore) Save(spots []models.Spot) error {
	raw, err := json.Marshal(spots)
	if err != nil {
		return fmt.Errorf("store: marshal: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".spots-*.json")
	if err != nil {
		return fmt.Errorf("store: temp file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("store: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store: rename: %w", err)
	}
	return nil
}

// Reset removes the slot file.
func (s *FileStore) Reset() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: remove %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
