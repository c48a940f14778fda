// Package storage persists photo bytes behind a backend-neutral capability
// interface. Keys are sanitized strings, never trusted filesystem paths.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound reports that no object exists under the requested key.
	ErrNotFound = errors.New("storage: object not found")
	// ErrInvalidKey reports a key that is empty after sanitization.
	ErrInvalidKey = errors.New("storage: invalid key")
)

// Backend stores and retrieves byte payloads addressed by a string key.
type Backend interface {
	// Store writes data under the sanitized form of key and returns the key
	// actually used.
	Store(ctx context.Context, data []byte, key string) (string, error)
	Retrieve(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	// Exists never fails on absence, only on transport errors.
	Exists(ctx context.Context, key string) (bool, error)
	// URL returns a client-resolvable URL for the object.
	URL(ctx context.Context, key string) (string, error)
}

// Config selects and parameterizes a backend.
type Config struct {
	Type string // "local" or "s3"

	// Local backend.
	BasePath string
	BaseURL  string

	// S3-compatible backend.
	Endpoint      string
	Bucket        string
	Region        string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	PublicBaseURL string // when set, URLs are composed instead of presigned
}

// New constructs the configured backend.
func New(cfg Config) (Backend, error) {
	switch cfg.Type {
	case "local", "":
		return NewLocalBackend(cfg.BasePath, cfg.BaseURL)
	case "s3":
		return NewMinioBackend(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.Type)
	}
}

// sanitizeKey strips path-traversal segments, normalizes separators, and
// removes any leading separator. An empty result is an error.
func sanitizeKey(key string) (string, error) {
	sanitized := strings.ReplaceAll(key, "..", "")
	sanitized = strings.ReplaceAll(sanitized, "\\", "/")
	sanitized = strings.TrimLeft(sanitized, "/")
	if sanitized == "" {
		return "", fmt.Errorf("%w: empty path after sanitization", ErrInvalidKey)
	}
	return sanitized, nil
}
