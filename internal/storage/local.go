package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalBackend keeps objects under a base directory on the local filesystem
// and serves them from a static base URL.
type LocalBackend struct {
	basePath string
	baseURL  string
}

// NewLocalBackend creates the base directory if it is missing.
func NewLocalBackend(basePath, baseURL string) (*LocalBackend, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("storage base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalBackend{basePath: basePath, baseURL: baseURL}, nil
}

func (l *LocalBackend) fullPath(key string) string {
	return filepath.Join(l.basePath, filepath.FromSlash(key))
}

func (l *LocalBackend) Store(_ context.Context, data []byte, key string) (string, error) {
	sanitized, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}
	target := l.fullPath(sanitized)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create parent dir: %w", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return sanitized, nil
}

func (l *LocalBackend) Retrieve(_ context.Context, key string) ([]byte, error) {
	sanitized, err := sanitizeKey(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(l.fullPath(sanitized))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

func (l *LocalBackend) Delete(_ context.Context, key string) error {
	sanitized, err := sanitizeKey(key)
	if err != nil {
		return err
	}
	target := l.fullPath(sanitized)
	if _, err := os.Stat(target); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err := os.Remove(target); err != nil {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

func (l *LocalBackend) Exists(_ context.Context, key string) (bool, error) {
	sanitized, err := sanitizeKey(key)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(l.fullPath(sanitized)); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat file: %w", err)
	}
	return true, nil
}

func (l *LocalBackend) URL(_ context.Context, key string) (string, error) {
	sanitized, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(l.baseURL, "/") + "/" + sanitized, nil
}
