package cache

import (
	"context"
	"time"
)

// Store is a small TTL key/value port. It backs sign-out token revocation and
// the portfolio summary cache.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
