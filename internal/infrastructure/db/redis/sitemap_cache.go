package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultSitemapTTL = time.Hour

// SitemapCache stores serialized sitemap documents with a revalidation TTL.
// Key format: sitemap:<name>:<page>
type SitemapCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSitemapCache creates a SitemapCache wrapping the given Redis client.
// A non-positive ttl falls back to one hour.
func NewSitemapCache(client *redis.Client, ttl time.Duration) *SitemapCache {
	if ttl <= 0 {
		ttl = defaultSitemapTTL
	}
	return &SitemapCache{client: client, ttl: ttl}
}

// Get returns the cached serialization for a page, or ok=false on a miss.
// Transport errors are reported as misses with the error attached.
func (c *SitemapCache) Get(ctx context.Context, name string, page int) (string, bool, error) {
	val, err := c.client.Get(ctx, c.key(name, page)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("sitemap cache get: %w", err)
	}
	return val, true, nil
}

// Put stores a serialized page until the next revalidation window.
func (c *SitemapCache) Put(ctx context.Context, name string, page int, body string) error {
	return c.client.Set(ctx, c.key(name, page), body, c.ttl).Err()
}

func (c *SitemapCache) key(name string, page int) string {
	return fmt.Sprintf("sitemap:%s:%d", name, page)
}
