package metadata

import (
	"context"
)

// Repository is a small async key-value store. Get returns (nil, nil) for
// keys that were never set or have been deleted.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
