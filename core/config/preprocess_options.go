// ABOUTME: Preprocess configuration for service-level control of fetch and cache behavior
// ABOUTME: Provides configuration options independent of HTTP request structures

package config

import "time"

// PreprocessConfig controls document fetching and caching behavior
type PreprocessConfig struct {
	// DocumentCacheTTL is how long fetched documents stay cached
	DocumentCacheTTL time.Duration

	// MaxDocumentBytes is the largest document body the service reads
	MaxDocumentBytes int64
}

// DefaultPreprocessConfig returns the default configuration
func DefaultPreprocessConfig() PreprocessConfig {
	return PreprocessConfig{
		DocumentCacheTTL: 1 * time.Hour,
		MaxDocumentBytes: 20 << 20, // 20 MiB, comfortably above the largest Gutenberg texts
	}
}

// PreprocessOption is a functional option for configuring preprocessing
type PreprocessOption func(*PreprocessConfig)

// WithDocumentCacheTTL sets how long fetched documents stay cached
func WithDocumentCacheTTL(ttl time.Duration) PreprocessOption {
	return func(c *PreprocessConfig) {
		c.DocumentCacheTTL = ttl
	}
}

// WithMaxDocumentBytes sets the largest document body the service reads
func WithMaxDocumentBytes(limit int64) PreprocessOption {
	return func(c *PreprocessConfig) {
		c.MaxDocumentBytes = limit
	}
}

// NewPreprocessConfig creates a new preprocess configuration with the given options
func NewPreprocessConfig(opts ...PreprocessOption) PreprocessConfig {
	config := DefaultPreprocessConfig()

	for _, opt := range opts {
		opt(&config)
	}

	return config
}
