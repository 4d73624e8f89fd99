package taxonomy

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Source loads a taxonomy at startup.
type Source interface {
	Name() string
	Load(ctx context.Context) (*Taxonomy, error)
}

// BuiltinSource serves the compiled-in tables.
type BuiltinSource struct{}

func (BuiltinSource) Name() string { return "builtin" }

func (BuiltinSource) Load(ctx context.Context) (*Taxonomy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Build(DefaultDocument())
}

// Opener is the read side of an object store.
type Opener interface {
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}

// StoreSource reads a YAML document from an object store.
type StoreSource struct {
	Store Opener
	Key   string
}

func (s StoreSource) Name() string { return "store" }

func (s StoreSource) Load(ctx context.Context) (*Taxonomy, error) {
	if s.Store == nil {
		return nil, fmt.Errorf("taxonomy store source: no object store configured")
	}
	key := strings.TrimSpace(s.Key)
	if key == "" {
		return nil, fmt.Errorf("taxonomy store source: key is required")
	}
	rc, err := s.Store.Open(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("open taxonomy %s: %w", key, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy %s: %w", key, err)
	}
	return ParseYAML(data)
}
