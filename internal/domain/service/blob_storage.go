package service

import (
	"context"
	"io"
)

// BlobStorage stores uploaded files and hands back their public URL.
type BlobStorage interface {
	// Upload writes r under name, overwriting any previous object, and returns its public URL.
	Upload(ctx context.Context, r io.Reader, name, contentType string) (string, error)

	// Delete removes the object stored under name. Missing objects are not an error.
	Delete(ctx context.Context, name string) error

	// Open streams the object stored under the full bucket key.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}
