package contracts

import (
	"context"
	"time"
)

// RedisRepository backs the days cache and the per-slot write lock. Cached
// values are JSON documents; lock tokens are stored as plain strings.
type RedisRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Delete(ctx context.Context, key string) error
	AcquireToken(ctx context.Context, key, token string, ttl time.Duration) (bool, error)
	ReleaseToken(ctx context.Context, key, token string) (bool, error)
}
