package storage

import (
	"context"
	"strings"
	"testing"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	backend, _ := newTestBackend(t)
	return NewService(backend)
}

func TestStorePhotoKeyPolicy(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	key, err := svc.StorePhoto(ctx, []byte("bytes"), "captain.png", 42)
	if err != nil {
		t.Fatalf("store photo: %v", err)
	}
	if !strings.HasPrefix(key, "miniatures/42/") {
		t.Fatalf("key %q not namespaced by miniature", key)
	}
	if !strings.HasSuffix(key, "_captain.png") {
		t.Fatalf("key %q does not keep the original stem and extension", key)
	}
}

func TestStorePhotoDefaultsExtension(t *testing.T) {
	svc := newTestService(t)
	key, err := svc.StorePhoto(context.Background(), []byte("bytes"), "noext", 7)
	if err != nil {
		t.Fatalf("store photo: %v", err)
	}
	if !strings.HasSuffix(key, "_noext.jpg") {
		t.Fatalf("key %q should default to the jpg extension", key)
	}
}

func TestStorePhotoKeysNeverCollide(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.StorePhoto(ctx, []byte("a"), "same.png", 1)
	if err != nil {
		t.Fatalf("store first: %v", err)
	}
	second, err := svc.StorePhoto(ctx, []byte("b"), "same.png", 1)
	if err != nil {
		t.Fatalf("store second: %v", err)
	}
	if first == second {
		t.Fatalf("repeated filename produced colliding key %q", first)
	}
}

func TestPhotoURLResolvesStoredKey(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	key, err := svc.StorePhoto(ctx, []byte("bytes"), "hero.png", 5)
	if err != nil {
		t.Fatalf("store photo: %v", err)
	}
	url, err := svc.PhotoURL(ctx, key)
	if err != nil {
		t.Fatalf("photo url: %v", err)
	}
	want := "http://localhost:3000/uploads/" + key
	if url != want {
		t.Fatalf("url = %q, want %q", url, want)
	}
}

func TestDeletePhotoRemovesObject(t *testing.T) {
	backend, _ := newTestBackend(t)
	svc := NewService(backend)
	ctx := context.Background()

	key, err := svc.StorePhoto(ctx, []byte("bytes"), "base.webp", 3)
	if err != nil {
		t.Fatalf("store photo: %v", err)
	}
	if err := svc.DeletePhoto(ctx, key); err != nil {
		t.Fatalf("delete photo: %v", err)
	}
	exists, err := backend.Exists(ctx, key)
	if err != nil || exists {
		t.Fatalf("exists after delete = %v, %v; want false, nil", exists, err)
	}
}
