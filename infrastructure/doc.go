// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache built on patrickmn/go-cache
// - cache/redis: Redis-based cache storing values as RedisJSON documents
// - cache/sqlite: SQLite-backed persistent cache with expiry cleanup
// - http/standard: HTTP client with retries, charset decoding and throttling
// - logger/logrus: Structured JSON logger built on sirupsen/logrus
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(time.Hour)
//	err := cache.Set(ctx, "document:"+url, docData, time.Hour)
//	value, err := cache.Get(ctx, "document:"+url)
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	})
//
// SQLite Cache Example:
//
//	cache, err := sqlite.NewSQLiteCacheWithLogger("cache.db", logger)
//
// # HTTP Client
//
// The HTTP client retries transient failures, decodes Latin-1 and UTF-8
// document bodies to UTF-8, and can throttle outbound requests so that
// document mirrors are not hammered:
//
//	client := standard.NewStandardHTTPClient(standard.Options{
//	    Timeout:           10 * time.Second,
//	    RequestsPerSecond: 2,
//	})
//	resp, err := client.Get(ctx, "https://www.gutenberg.org/files/11/11-0.txt")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger emits JSON lines with structured fields:
//
//	logger := logrus.NewLogrusLogger("info")
//	logger.Info("Document cleaned", map[string]interface{}{
//	    "url":   url,
//	    "words": stats.Words,
//	})
package infrastructure
