package repository

import (
	"context"
	"time"
)

// Cache is the optional pass-through key-value cache port. Implementations
// are serialization-agnostic; key derivation and codec are supplied when the
// adapter is constructed. The core never requires a cache: callers must
// treat a nil Cache as a miss-always no-op.
type Cache[V any] interface {
	// Get returns the cached value for the key, or ErrNotFound on a miss.
	Get(ctx context.Context, id int64) (*V, error)

	// Put stores the value under the key with the given TTL.
	Put(ctx context.Context, id int64, value *V, ttl time.Duration) error

	// Evict removes the key. Evicting an absent key is not an error.
	Evict(ctx context.Context, id int64) error
}
