// Package metadata is a key/value repository over the local SQLite
// "metadata" table. The session record lives here.
package metadata

import (
	"context"
)

// Repository reads and writes opaque values by key.
//
// Get returns (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
