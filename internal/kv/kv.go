// Package kv defines the key-value store the tracker persists into, plus
// the file and Postgres backends. The domain only ever needs get and set
// of whole blobs; engine internals stay behind this interface.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound reports an absent key.
var ErrNotFound = errors.New("key not found")

type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites the value for key.
	Set(ctx context.Context, key string, value []byte) error
}
