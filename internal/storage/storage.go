// Package storage persists generated PDFs to a local directory or an S3-compatible bucket.
package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Store persists a named artifact and returns where it ended up.
type Store interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
}

// LocalStore writes artifacts under Dir.
type LocalStore struct {
	Dir string
}

// NewLocalStore creates the directory if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &LocalStore{Dir: dir}, nil
}

// Put implements Store.
func (s *LocalStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key, err := cleanName(name)
	if err != nil {
		return "", err
	}
	target := filepath.Join(s.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	return target, nil
}

// cleanName rejects names that would escape the store root.
func cleanName(name string) (string, error) {
	key := path.Clean("/" + strings.ReplaceAll(name, "\\", "/"))[1:]
	if key == "" || key == "." {
		return "", fmt.Errorf("invalid artifact name %q", name)
	}
	return key, nil
}

func contentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".pdf":
		return "application/pdf"
	case ".json":
		return "application/json"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
