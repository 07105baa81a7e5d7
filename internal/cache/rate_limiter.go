package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter counts requests per client key in fixed windows
type RateLimiter interface {
	// Allow records one hit and reports whether the key is still under its limit
	Allow(ctx context.Context, key string) (bool, int64, error)
}

type rateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRateLimiter allows limit hits per window for every key
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) RateLimiter {
	return &rateLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
	}
}

func (r *rateLimiter) key(key string) string {
	bucket := time.Now().UnixNano() / int64(r.window)
	return fmt.Sprintf("ratelimit:%s:%d", key, bucket)
}

func (r *rateLimiter) Allow(ctx context.Context, key string) (bool, int64, error) {
	k := r.key(key)
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, r.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}
	count := incr.Val()
	remaining := r.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return count <= r.limit, remaining, nil
}
