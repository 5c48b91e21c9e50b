package rates

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps redis.Client but fails safe: redis being unreachable degrades
// to cache misses, it never turns into an error on the rate path.
type Cache struct {
	client *redis.Client
}

// NewCache creates a new Redis-backed quote cache.
func NewCache(addr, password string, db int) *Cache {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Cache{client: redis.NewClient(opts)}
}

// Get returns the cached value or nil when missing or redis is unavailable.
func (c *Cache) Get(ctx context.Context, key string) []byte {
	if c == nil || c.client == nil {
		return nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and connectivity errors both read as a miss
		return nil
	}
	return res
}

// Set stores value with a TTL, ignoring redis errors.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Set(ctx, key, value, ttl).Err()
}
