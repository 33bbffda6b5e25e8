// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, fetching and logging

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Log contains logging configuration
	Log LogConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Fetch contains document fetching configuration
	Fetch FetchConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum level that gets logged (debug/info/warn/error)
	Level string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains SQLite cache configuration
	SQLite SQLiteConfig

	// DocumentTTLMinutes is how long fetched documents stay cached
	DocumentTTLMinutes int
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpirationMinutes is the default TTL for cache entries in minutes
	DefaultExpirationMinutes int
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the cache database file path
	Path string
}

// FetchConfig holds document fetching configuration
type FetchConfig struct {
	// TimeoutSeconds bounds each fetch request
	TimeoutSeconds int

	// UserAgent identifies the service to document sources;
	// empty uses the client default
	UserAgent string

	// RequestsPerSecond throttles outbound fetches; zero disables throttling
	RequestsPerSecond float64

	// MaxBodyMB caps how many megabytes of a document body get read
	MaxBodyMB int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("SERVER_PORT", "8000"),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpirationMinutes: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION_MINUTES", 60),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "cache.db"),
			},
			DocumentTTLMinutes: getEnvAsIntOrDefault("DOCUMENT_CACHE_TTL_MINUTES", 60),
		},
		Fetch: FetchConfig{
			TimeoutSeconds:    getEnvAsIntOrDefault("FETCH_TIMEOUT_SECONDS", 10),
			UserAgent:         getEnvOrDefault("FETCH_USER_AGENT", ""),
			RequestsPerSecond: getEnvAsFloatOrDefault("FETCH_RATE_LIMIT", 0),
			MaxBodyMB:         getEnvAsIntOrDefault("FETCH_MAX_BODY_MB", 20),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" && c.Cache.Type != "sqlite" {
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite cache path cannot be empty when using sqlite cache")
	}

	if c.Cache.DocumentTTLMinutes < 1 {
		return errors.New("document cache TTL must be at least 1 minute")
	}

	if c.Fetch.TimeoutSeconds < 1 {
		return errors.New("fetch timeout must be at least 1 second")
	}

	if c.Fetch.RequestsPerSecond < 0 {
		return errors.New("fetch rate limit cannot be negative")
	}

	if c.Fetch.MaxBodyMB < 1 {
		return errors.New("fetch body cap must be at least 1 megabyte")
	}

	return nil
}
