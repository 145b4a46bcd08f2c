package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/crispwatch/media-gateway/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Cache is a read-through cache for upstream discover feeds (trending and
// curated lists). History and search are never cached here: search has a
// history side effect and history must always read current state.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func buildKey(category domain.Category, list string) string {
	return fmt.Sprintf("discover:%s:%s", category, list)
}

// GetList returns a cached feed; found is false on a miss.
func (c *Cache) GetList(ctx context.Context, category domain.Category, list string) ([]domain.ContentSummary, bool, error) {
	key := buildKey(category, list)
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}

	var items []domain.ContentSummary
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, false, fmt.Errorf("cache unmarshal %s: %w", key, err)
	}
	return items, true, nil
}

// SetList stores a feed with the configured TTL.
func (c *Cache) SetList(ctx context.Context, category domain.Category, list string, items []domain.ContentSummary) error {
	key := buildKey(category, list)
	val, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
