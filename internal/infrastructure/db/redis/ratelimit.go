package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiterStore is a fixed-window request counter backed by Redis,
// satisfying echo's middleware.RateLimiterStore interface. Counters are
// shared across instances, so the limit holds for the whole deployment.
// Key format: ratelimit:<identifier>
type RateLimiterStore struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimiterStore creates a store allowing at most limit requests per
// identifier within each window.
func NewRateLimiterStore(client *redis.Client, limit int, window time.Duration) *RateLimiterStore {
	return &RateLimiterStore{client: client, limit: limit, window: window}
}

// Allow reports whether the identifier is still within its request budget
// for the current window. The first request in a window sets the expiry;
// on a Redis failure the request is allowed through rather than blocking
// all traffic on a degraded counter store.
func (s *RateLimiterStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	key := s.key(identifier)
	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return true, nil
	}
	if n == 1 {
		_ = s.client.Expire(ctx, key, s.window).Err()
	}
	return n <= int64(s.limit), nil
}

func (s *RateLimiterStore) key(identifier string) string {
	return fmt.Sprintf("ratelimit:%s", identifier)
}
