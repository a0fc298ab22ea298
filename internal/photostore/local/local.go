package local

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalPhotoStore writes uploads under a public base directory, one
// subdirectory per category.
type LocalPhotoStore struct {
	basePath string
}

func NewLocalPhotoStore(basePath string) (*LocalPhotoStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create public directory: %w", err)
	}
	return &LocalPhotoStore{basePath: basePath}, nil
}

func (s *LocalPhotoStore) Save(_ context.Context, category, originalName string, r io.Reader) (string, error) {
	dir, err := s.safeJoin(category)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s directory: %w", category, err)
	}

	filename := randomName() + normalizeExt(originalName)
	filePath := filepath.Join(dir, filename)

	f, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(filePath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(filePath)
		return "", fmt.Errorf("failed to close file: %w", err)
	}
	return "/" + category + "/" + filename, nil
}

func (s *LocalPhotoStore) Delete(_ context.Context, publicPath string) error {
	filePath, err := s.safeJoin(strings.TrimPrefix(publicPath, "/"))
	if err != nil {
		return err
	}
	if err := os.Remove(filePath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("photo not found")
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// safeJoin resolves rel under basePath and rejects directory traversal.
func (s *LocalPhotoStore) safeJoin(rel string) (string, error) {
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(s.basePath, rel))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal attempt")
	}
	return absPath, nil
}

// randomName returns 8 random bytes hex-encoded, the collision-resistant
// storage key for one upload.
func randomName() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// normalizeExt keeps only a known, lowercased image extension from the
// original filename; anything else becomes .jpg.
func normalizeExt(originalName string) string {
	switch strings.ToLower(filepath.Ext(originalName)) {
	case ".png":
		return ".png"
	case ".gif":
		return ".gif"
	case ".webp":
		return ".webp"
	case ".jpeg":
		return ".jpeg"
	default:
		return ".jpg"
	}
}
