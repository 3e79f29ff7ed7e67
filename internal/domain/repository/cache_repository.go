package repository

import (
	"context"
	"time"
)

// CacheRepository caches serialized listing pages for anonymous reads.
// Stale entries are acceptable; writers invalidate by prefix.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	// DeleteByPrefix removes every key under the given prefix, scanning
	// incrementally rather than blocking the store.
	DeleteByPrefix(ctx context.Context, prefix string) error
}
