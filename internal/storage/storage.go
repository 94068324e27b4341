// Package storage defines the interface for object-storage operations.
// Concrete backends live in the s3store and gcsstore subpackages; swap
// implementations by changing the type injected at startup.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrObjectNotFound is returned by Metadata when no object exists at the key.
var ErrObjectNotFound = errors.New("object not found")

// ObjectInfo is the metadata record for a stored object.
type ObjectInfo struct {
	Name        string
	SizeBytes   int64
	ContentType string
	CreatedAt   time.Time
	FullPath    string
}

// ObjectStore is the interface for writing and inspecting objects.
// Cancellation and timeouts are inherited from ctx; implementations add no
// deadline policy of their own.
type ObjectStore interface {
	// Write stores data under the given key with the given content type.
	Write(ctx context.Context, key string, data []byte, contentType string) error

	// PublicURL constructs the browser-accessible URL for a key.
	PublicURL(key string) string

	// Metadata fetches the stored object's metadata.
	Metadata(ctx context.Context, key string) (*ObjectInfo, error)
}
