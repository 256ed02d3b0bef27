package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/x17green/realest-sub003/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisSearchCache stores serialized search pages under their query cache
// key. A miss is (false, nil), never an error.
type RedisSearchCache struct {
	client *redis.Client
}

var _ interfaces.ISearchCache = (*RedisSearchCache)(nil)

func NewRedisSearchCache(client *redis.Client) *RedisSearchCache {
	return &RedisSearchCache{client: client}
}

func (c *RedisSearchCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(data), dest)
}

func (c *RedisSearchCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}
