package gcs

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// Uploader writes image blobs into a single bucket and hands back their
// public URLs. There is no overwrite (keys embed a fresh UUID) and no
// delete path.
type Uploader struct {
	client *storage.Client
	bucket string
}

// NewUploader builds a storage client from the service-account key JSON
// resolved at startup.
func NewUploader(ctx context.Context, credentialsJSON []byte, bucket string) (*Uploader, error) {
	client, err := storage.NewClient(ctx, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("create storage client failed: %w", err)
	}
	return &Uploader{client: client, bucket: bucket}, nil
}

// Upload stores data under a collision-resistant key derived from the
// original filename and returns the object's public URL. A failed write
// fails the containing request; there is no retry.
func (u *Uploader) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	key := fmt.Sprintf("%s_%s", uuid.New().String(), filename)

	writeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	w := u.client.Bucket(u.bucket).Object(key).NewWriter(writeCtx)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write object %q failed: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize object %q failed: %w", key, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucket, key), nil
}

func (u *Uploader) Close() error {
	return u.client.Close()
}
