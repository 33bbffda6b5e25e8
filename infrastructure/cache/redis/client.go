// ABOUTME: Redis cache implementation using go-redis with RedisJSON storage
// ABOUTME: Provides distributed caching with TTL support and connection pooling

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/nitishm/go-rejson/v4"
	"github.com/redis/go-redis/v9"

	"textprep-app-api/pkg/config"
)

// RedisCache implements the Cache interface using Redis.
// Values are stored as RedisJSON documents via the rejson handler.
type RedisCache struct {
	client  *redis.Client
	handler *rejson.Handler
}

// NewRedisCache creates a new Redis cache instance
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	// Create Redis client
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	handler := rejson.NewReJSONHandler()
	handler.SetGoRedisClientWithContext(context.Background(), client)

	return &RedisCache{
		client:  client,
		handler: handler,
	}, nil
}

// Get retrieves a value from Redis
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.handler.JSONGet(key, ".")
	if err != nil {
		if err == redis.Nil {
			return nil, errors.New("key not found")
		}
		return nil, err
	}

	raw, ok := val.([]byte)
	if !ok {
		return nil, errors.New("unexpected reply type from redis")
	}

	// Unwrap the JSON value back into the original bytes
	var value []byte
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}

	return value, nil
}

// Set stores a value in Redis with the given TTL.
// The value is wrapped into a JSON document so RedisJSON can hold it;
// a zero TTL means no expiration.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if _, err := c.handler.JSONSet(key, ".", value); err != nil {
		return err
	}

	if ttl != 0 {
		return c.client.Expire(ctx, key, ttl).Err()
	}

	return nil
}

// Delete removes a key from Redis
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	// Redis DEL returns number of keys deleted, but we ignore it
	// as deleting non-existent key is not an error for our use case
	c.client.Del(ctx, key)
	return nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
