package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ConfirmationCache implements ports.ConfirmationCache using Redis.
// It remembers the signature of confirmations that already passed
// verification, keyed by "orderID:paymentID".
type ConfirmationCache struct {
	client *goredis.Client
	prefix string
}

// NewConfirmationCache creates a new Redis-backed confirmation cache.
func NewConfirmationCache(client *goredis.Client) *ConfirmationCache {
	return &ConfirmationCache{
		client: client,
		prefix: "confirmation:",
	}
}

// Get retrieves a cached confirmation by key.
// Returns nil, nil if the key does not exist.
func (c *ConfirmationCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis confirmation get: %w", err)
	}
	return val, nil
}

// Set stores a verified confirmation with TTL.
func (c *ConfirmationCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+key, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis confirmation set: %w", err)
	}
	return nil
}
