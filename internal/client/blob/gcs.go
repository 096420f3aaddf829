package blob

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
)

type GCSStore struct {
	bucket     *storage.BucketHandle
	bucketName string
}

func NewGCSStore(ctx context.Context, bucketName string) (*GCSStore, error) {
	const op = "blob.NewGCSStore"

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &GCSStore{
		bucket:     client.Bucket(bucketName),
		bucketName: bucketName,
	}, nil
}

func (s *GCSStore) Save(ctx context.Context, path string, data []byte) (string, error) {
	const op = "blob.GCSStore.Save"

	w := s.bucket.Object(path).NewWriter(ctx)
	w.ContentType = "image/jpeg"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("%s write: %w", op, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%s close: %w", op, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, path), nil
}
