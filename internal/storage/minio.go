package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const presignExpiry = time.Hour

// MinioBackend stores objects in an S3-compatible bucket. Object URLs use the
// configured public base URL when present, otherwise a one-hour presigned GET.
type MinioBackend struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewMinioBackend connects to the endpoint and verifies the bucket exists,
// creating it when absent.
func NewMinioBackend(cfg Config) (*MinioBackend, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}
	return &MinioBackend{client: client, bucket: cfg.Bucket, publicBaseURL: cfg.PublicBaseURL}, nil
}

func (m *MinioBackend) Store(ctx context.Context, data []byte, key string) (string, error) {
	sanitized, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}
	_, err = m.client.PutObject(ctx, m.bucket, sanitized, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return sanitized, nil
}

func (m *MinioBackend) Retrieve(ctx context.Context, key string) ([]byte, error) {
	sanitized, err := sanitizeKey(key)
	if err != nil {
		return nil, err
	}
	obj, err := m.client.GetObject(ctx, m.bucket, sanitized, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		if isNoSuchKey(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("read object: %w", err)
	}
	return data, nil
}

func (m *MinioBackend) Delete(ctx context.Context, key string) error {
	sanitized, err := sanitizeKey(key)
	if err != nil {
		return err
	}
	exists, err := m.Exists(ctx, sanitized)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err := m.client.RemoveObject(ctx, m.bucket, sanitized, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (m *MinioBackend) Exists(ctx context.Context, key string) (bool, error) {
	sanitized, err := sanitizeKey(key)
	if err != nil {
		return false, err
	}
	_, err = m.client.StatObject(ctx, m.bucket, sanitized, minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat object: %w", err)
	}
	return true, nil
}

func (m *MinioBackend) URL(ctx context.Context, key string) (string, error) {
	sanitized, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}
	if m.publicBaseURL != "" {
		return strings.TrimRight(m.publicBaseURL, "/") + "/" + sanitized, nil
	}
	u, err := m.client.PresignedGetObject(ctx, m.bucket, sanitized, presignExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign get: %w", err)
	}
	return u.String(), nil
}

func isNoSuchKey(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == 404
}
