package history

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const historyCachePrefix = "history:"

// Cache stores assembled histories.
type Cache interface {
	// Get returns nil without error on a miss.
	Get(ctx context.Context, key string) (*OutletHistory, error)
	Set(ctx context.Context, key string, h *OutletHistory, ttl time.Duration) error
}

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*OutletHistory, error) {
	data, err := c.client.Get(ctx, historyCachePrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var h OutletHistory
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, h *OutletHistory, ttl time.Duration) error {
	b, err := json.Marshal(h)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, historyCachePrefix+key, b, ttl).Err()
}
