// Package gcsstore implements the object store on a Firebase Storage
// bucket (Google Cloud Storage under the hood).
package gcsstore

import (
	"context"
	"errors"
	"fmt"
	"path"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"

	"github.com/mwhitfield/user_uploads/internal/storage"
)

// Store writes objects to a single Firebase Storage bucket.
type Store struct {
	bucket *gcs.BucketHandle
	name   string
}

// New resolves the named bucket through the Firebase app's storage client.
func New(ctx context.Context, app *firebase.App, bucketName string) (*Store, error) {
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}

	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("bucket %q: %w", bucketName, err)
	}

	return &Store{bucket: bucket, name: bucketName}, nil
}

func (s *Store) Write(ctx context.Context, key string, data []byte, contentType string) error {
	w := s.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("write object %q: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize object %q: %w", key, err)
	}
	return nil
}

func (s *Store) PublicURL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.name, key)
}

func (s *Store) Metadata(ctx context.Context, key string) (*storage.ObjectInfo, error) {
	attrs, err := s.bucket.Object(key).Attrs(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, storage.ErrObjectNotFound
		}
		return nil, fmt.Errorf("object attrs %q: %w", key, err)
	}

	return &storage.ObjectInfo{
		Name:        path.Base(attrs.Name),
		SizeBytes:   attrs.Size,
		ContentType: attrs.ContentType,
		CreatedAt:   attrs.Created,
		FullPath:    attrs.Name,
	}, nil
}
