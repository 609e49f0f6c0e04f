package ports

import (
	"context"
	"io"
)

// ObjectStore stores a binary blob under a logical path and returns its
// public URL. Used for uploaded profile images and generated QR codes.
type ObjectStore interface {
	Upload(ctx context.Context, content io.Reader, path string) (string, error)
}
