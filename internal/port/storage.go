package port

import (
	"context"
	"io"
)

// PutObjectInput describes one image to store.
type PutObjectInput struct {
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// StoredObject is the result of a successful put.
type StoredObject struct {
	Key      string
	Location string
	ETag     string
}

// ImageStorage keeps uploaded cat and store images in a single bucket.
type ImageStorage interface {
	Put(ctx context.Context, input PutObjectInput) (*StoredObject, error)
	Delete(ctx context.Context, key string) error
	// URL returns a browser-reachable URL for key: the public base URL when
	// one is configured, a presigned GET otherwise.
	URL(ctx context.Context, key string) (string, error)
}
