package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Service applies the photo key policy on top of a Backend. Keys take the
// form miniatures/{miniatureID}/{uuid}_{stem}.{ext}; the random component
// keeps repeated uploads of the same filename from colliding.
type Service struct {
	backend Backend
}

func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

// StorePhoto writes the photo bytes under a fresh key derived from the
// original filename and returns the key.
func (s *Service) StorePhoto(ctx context.Context, data []byte, filename string, miniatureID int64) (string, error) {
	key := photoKey(miniatureID, filename)
	stored, err := s.backend.Store(ctx, data, key)
	if err != nil {
		return "", fmt.Errorf("store photo: %w", err)
	}
	return stored, nil
}

// DeletePhoto removes the stored object. Absence is reported as ErrNotFound.
func (s *Service) DeletePhoto(ctx context.Context, key string) error {
	return s.backend.Delete(ctx, key)
}

// PhotoURL resolves the stored key to a client-reachable URL.
func (s *Service) PhotoURL(ctx context.Context, key string) (string, error) {
	return s.backend.URL(ctx, key)
}

func photoKey(miniatureID int64, filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	ext := strings.TrimPrefix(path.Ext(base), ".")
	if ext == "" {
		ext = "jpg"
	}
	stem := strings.TrimSuffix(base, path.Ext(base))
	if stem == "" {
		stem = "photo"
	}
	return fmt.Sprintf("miniatures/%d/%s_%s.%s", miniatureID, uuid.New().String(), stem, ext)
}
