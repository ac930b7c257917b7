package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"armory/internal/config"
	"armory/internal/domain"
)

func New(config *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       0,
	})
}

func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}

// JSONCache stores JSON-encoded values under a shared key prefix.
type JSONCache[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewJSONCache[T any](client *redis.Client, prefix string, ttl time.Duration) *JSONCache[T] {
	return &JSONCache[T]{client: client, prefix: prefix, ttl: ttl}
}

// Get returns nil without error on a cache miss. A nil cache or client
// behaves as an always-empty cache.
func (c *JSONCache[T]) Get(ctx context.Context, key string) (*T, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	value, err := c.client.Get(ctx, c.prefix+":"+key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var out T
	if err := json.Unmarshal([]byte(value), &out); err != nil {
		return nil, fmt.Errorf("unmarshal cached %s: %w", c.prefix, err)
	}

	return &out, nil
}

func (c *JSONCache[T]) Set(ctx context.Context, key string, value *T) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cached %s: %w", c.prefix, err)
	}

	return c.client.Set(ctx, c.prefix+":"+key, data, c.ttl).Err()
}

func (c *JSONCache[T]) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, c.prefix+":"+key).Err()
}

// InventoryCache caches a user's joined inventory list, keyed by user ID.
func InventoryCache(client *redis.Client) *JSONCache[[]*domain.InventoryItem] {
	return NewJSONCache[[]*domain.InventoryItem](client, "inventory", 5*time.Minute)
}
