package service

import (
	"context"
	"errors"
	"io"
)

// ErrBlobNotFound is returned when no blob is stored under the key.
var ErrBlobNotFound = errors.New("blob not found")

// Blob is a stored file read back from the blob store.
type Blob struct {
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

// BlobStore saves uploaded files and serves them back by key.
type BlobStore interface {
	// Save stores the content and returns the public reference (/uploads/<key>).
	Save(ctx context.Context, filename, contentType string, content io.Reader) (string, error)

	// Open returns the blob stored under key. The caller closes Body.
	Open(ctx context.Context, key string) (*Blob, error)

	// Delete removes the blob behind a reference returned by Save. References that do not
	// point into the store and blobs that are already gone are not errors.
	Delete(ctx context.Context, ref string) error
}
