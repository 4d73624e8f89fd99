package object

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Open when no object exists at the key.
var ErrNotFound = errors.New("object not found")

// ObjectStore reads and writes whole objects by key.
type ObjectStore interface {
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error)
}
