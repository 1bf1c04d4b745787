// Package blobstore abstracts where uploaded file content lives. The
// database keeps only a storage key; the bytes go to a local uploads
// directory or to S3-compatible object storage, selected by config.
package blobstore

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Store reads and writes binary blobs by key. Keys are opaque to callers;
// NewStorageKey produces them.
type Store interface {
	// Save writes the full content of r under key.
	Save(ctx context.Context, key string, r io.Reader) error

	// Open returns the content stored under key. The caller must close the
	// returned reader.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the blob stored under key.
	Delete(ctx context.Context, key string) error
}

// NewStorageKey generates a date-bucketed random key for a new upload.
func NewStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("%d/%d/%d/%v", d.Year(), int(d.Month()), d.Day(), uuid.New())
}
