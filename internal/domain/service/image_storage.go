package service

import (
	"context"
	"io"
)

// ImageStorage keeps product images in object storage.
type ImageStorage interface {
	// Upload writes the image under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)

	Delete(ctx context.Context, key string) error
}
