package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/fishcast/internal/advisor"
)

// DefaultTTL keeps reports around long enough to absorb bursts of requests
// against the provider's quota.
const DefaultTTL = 10 * time.Minute

// Cache wraps a Redis client and provides typed get/set for reports.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache with the default TTL.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client, ttl: DefaultTTL}
}

// NewCacheWithTTL constructs a Cache with a custom TTL.
func NewCacheWithTTL(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// key returns the Redis key for a place key.
func key(placeKey string) string {
	return "report:" + strings.ToLower(strings.TrimSpace(placeKey))
}

// Get retrieves a report from cache.
// Returns nil, nil on a cache miss (not an error).
func (c *Cache) Get(ctx context.Context, placeKey string) (*advisor.Report, error) {
	val, err := c.client.Get(ctx, key(placeKey)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get for %s: %w", placeKey, err)
	}

	var report advisor.Report
	if err := json.Unmarshal([]byte(val), &report); err != nil {
		return nil, fmt.Errorf("unmarshaling cached report for %s: %w", placeKey, err)
	}

	return &report, nil
}

// Set stores a report with the configured TTL.
func (c *Cache) Set(ctx context.Context, placeKey string, report *advisor.Report) error {
	if report == nil {
		return nil
	}

	b, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report for %s: %w", placeKey, err)
	}

	if err := c.client.Set(ctx, key(placeKey), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for %s: %w", placeKey, err)
	}

	return nil
}
