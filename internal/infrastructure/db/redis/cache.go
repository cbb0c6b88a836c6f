package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zrg-scripts/storefront-api/internal/api/metrics"
)

const listingTTL = 5 * time.Minute

// ListingCache caches serialized listing responses in Redis. Entries expire
// after listingTTL; the review pipeline additionally invalidates the scripts
// key on writes.
type ListingCache struct {
	client *redis.Client
}

// NewListingCache creates a ListingCache wrapping the given Redis client.
func NewListingCache(client *redis.Client) *ListingCache {
	return &ListingCache{client: client}
}

// Get unmarshals the cached value for key into v. Reports false on a miss.
func (c *ListingCache) Get(ctx context.Context, key string, v any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheRequestsTotal.WithLabelValues(key, "miss").Inc()
			return false, nil
		}
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		// A corrupt entry behaves like a miss; the caller refreshes it.
		metrics.CacheRequestsTotal.WithLabelValues(key, "miss").Inc()
		return false, nil
	}

	metrics.CacheRequestsTotal.WithLabelValues(key, "hit").Inc()
	return true, nil
}

// Set stores v under key with the listing TTL.
func (c *ListingCache) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}
	return c.client.Set(ctx, key, raw, listingTTL).Err()
}

// Invalidate removes the given keys.
func (c *ListingCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
