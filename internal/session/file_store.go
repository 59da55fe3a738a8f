package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"romarket/internal/model"
)

// fileStore implements Store as a single JSON file at a fixed path.
type fileStore struct {
	path string
}

// NewFileStore creates a file-backed session store at the given path.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

// Load reads the persisted seller record.
func (s *fileStore) Load() (*model.Seller, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file %s: %w", s.path, err)
	}

	var seller model.Seller
	if err := json.Unmarshal(data, &seller); err != nil {
		return nil, fmt.Errorf("failed to parse session file %s: %w", s.path, err)
	}

	return &seller, nil
}

// Save writes the seller record, creating parent directories as needed.
func (s *fileStore) Save(seller *model.Seller) error {
	data, err := json.Marshal(seller)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create session directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file %s: %w", s.path, err)
	}

	return nil
}

// Clear removes the session file if present.
func (s *fileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session file %s: %w", s.path, err)
	}
	return nil
}
