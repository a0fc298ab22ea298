package recordstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one JSON document per key under a base directory.
type FileStore struct {
	basePath string
}

func NewFileStore(basePath string) (*FileStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

func (s *FileStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, true, nil
}

// Save writes through a temp file and renames it into place, so a reader
// never observes a half-written collection and concurrent saves resolve to
// whichever rename lands last.
func (s *FileStore) Save(_ context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(s.basePath, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	// Keys are internal constants, but keep them on one level regardless.
	return filepath.Join(s.basePath, filepath.Base(key)+".json")
}
