// ABOUTME: In-memory cache implementation using the patrickmn/go-cache library
// ABOUTME: Provides a simple cache with TTL support and automatic cleanup

package memory

import (
	"context"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
)

// defaultCleanupFloor bounds how often the janitor sweeps expired items
const defaultCleanupFloor = time.Minute

// MemoryCache implements the Cache interface using patrickmn/go-cache
type MemoryCache struct {
	cache *cache.Cache
}

// NewMemoryCache creates a new in-memory cache instance.
// defaultExpiration applies to entries stored without an explicit TTL;
// zero or negative means entries never expire by default. The cleanup
// janitor runs at twice the default expiration, at least once a minute.
func NewMemoryCache(defaultExpiration time.Duration) *MemoryCache {
	if defaultExpiration <= 0 {
		return &MemoryCache{cache: cache.New(cache.NoExpiration, defaultCleanupFloor)}
	}

	cleanupInterval := 2 * defaultExpiration
	if cleanupInterval < defaultCleanupFloor {
		cleanupInterval = defaultCleanupFloor
	}

	return &MemoryCache{cache: cache.New(defaultExpiration, cleanupInterval)}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, found := c.cache.Get(key)
	if !found {
		return nil, errors.New("key not found")
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, errors.New("cached value is not a byte slice")
	}

	// Return a copy of the value
	result := make([]byte, len(data))
	copy(result, data)
	return result, nil
}

// Set stores a value in the cache with the given TTL.
// A zero TTL means the entry never expires.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// Create a copy of the value
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	expiration := ttl
	if ttl == 0 {
		expiration = cache.NoExpiration
	}

	c.cache.Set(key, valueCopy, expiration)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.cache.Delete(key)
	return nil
}

// ItemCount reports how many entries the cache currently holds,
// including expired entries the janitor has not swept yet.
func (c *MemoryCache) ItemCount() int {
	return c.cache.ItemCount()
}
