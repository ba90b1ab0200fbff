package clients

import (
	"context"
	"time"

	"github.com/samber/mo"
)

// KeyValueStore defines the interface for ephemeral keyed state with
// per-key expiration. Implementations: Redis (production) or in-memory
// (tests, local single-instance runs).
//
// Set and Get are atomic single-key operations at the store level. If two
// Set calls race on the same key, the last to complete wins.
type KeyValueStore interface {
	// Set stores a value under key with the given TTL, overwriting any
	// existing value. A TTL of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Get returns the value stored under key, or None if the key is absent
	// or its TTL has elapsed. Expiry is not an error.
	Get(ctx context.Context, key string) (mo.Option[[]byte], error)
	// Delete removes the value stored under key, if any
	Delete(ctx context.Context, key string) error
}
