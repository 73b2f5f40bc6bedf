package cache

import (
	"context"
	"time"
)

// Cache is the key-value contract the HTTP layer relies on. The catalog
// services never read through it.
type Cache interface {
	// Increment atomically adds one to key, creating it at 1.
	Increment(ctx context.Context, key string) (int64, error)

	// Expire sets the key's time to live.
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// TTL reports the remaining time to live. Negative values follow the
	// Redis convention for missing keys or keys without expiry.
	TTL(ctx context.Context, key string) (time.Duration, error)
}
