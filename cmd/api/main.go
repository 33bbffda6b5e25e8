// ABOUTME: Main entry point for the TextPrep API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"textprep-app-api/api"
	"textprep-app-api/api/handlers"
	"textprep-app-api/api/middleware"
	coreconfig "textprep-app-api/core/config"
	"textprep-app-api/core/interfaces"
	"textprep-app-api/core/preprocess"
	"textprep-app-api/infrastructure/cache/memory"
	"textprep-app-api/infrastructure/cache/redis"
	"textprep-app-api/infrastructure/cache/sqlite"
	stdhttp "textprep-app-api/infrastructure/http/standard"
	logruslogger "textprep-app-api/infrastructure/logger/logrus"
	"textprep-app-api/pkg/config"
	"textprep-app-api/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogrusLogger(cfg.Log.Level)
	logger.Info("Starting TextPrep API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"log_level":  cfg.Log.Level,
	})

	// Register Prometheus collectors
	metrics.Init()

	// Create cache
	cache := newCache(cfg, logger)
	if closer, ok := cache.(io.Closer); ok {
		defer closer.Close()
	}

	// Create HTTP client for document fetching
	httpClient := stdhttp.NewStandardHTTPClient(stdhttp.Options{
		Timeout:           time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
		UserAgent:         cfg.Fetch.UserAgent,
		RequestsPerSecond: cfg.Fetch.RequestsPerSecond,
		Transport: &middleware.LoggingRoundTripper{
			Transport: http.DefaultTransport,
			Logger:    logger,
		},
	})

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create services
	preprocessService := preprocess.NewPreprocessService(deps,
		coreconfig.WithDocumentCacheTTL(time.Duration(cfg.Cache.DocumentTTLMinutes)*time.Minute),
		coreconfig.WithMaxDocumentBytes(int64(cfg.Fetch.MaxBodyMB)<<20),
	)

	// Create API with middleware
	mux, handler := api.NewAPIWithMiddleware(api.APIConfig{
		Logger: logger,
	})

	// Create and register handlers
	handlers.NewHomeHandler().RegisterRoutes(mux)
	handlers.NewHealthHandler().RegisterRoutes(mux)
	handlers.NewPreprocessHandler(preprocessService).RegisterRoutes(mux)

	// Create HTTP server. Cleaning a large book can hold the response
	// open while the upstream fetch retries, so writes get a long leash.
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the cache backend named by the configuration. Redis and
// SQLite failures fall back to the in-memory cache so the service still
// starts without its preferred backend.
func newCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	defaultExpiration := time.Duration(cfg.Cache.Memory.DefaultExpirationMinutes) * time.Minute

	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(defaultExpiration)
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache

	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCacheWithLogger(cfg.Cache.SQLite.Path, logger)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(defaultExpiration)
		}
		if stats, err := sqliteCache.Stats(); err == nil {
			logger.Info("Using SQLite cache", stats)
		}
		return sqliteCache

	default:
		logger.Info("Using memory cache", map[string]interface{}{
			"default_expiration": defaultExpiration.String(),
		})
		return memory.NewMemoryCache(defaultExpiration)
	}
}

func init() {
	// Print banner
	fmt.Println(`
 _____              _    ____                            _     ____   ___
|_   _|  ___ __  __| |_ |  _ \  _ __   ___  _ __        / \   |  _ \ |_ _|
  | |   / _ \\ \/ /| __|| |_) || '__| / _ \| '_ \      / _ \  | |_) | | |
  | |  |  __/ >  < | |_ |  __/ | |   |  __/| |_) |    / ___ \ |  __/  | |
  |_|   \___|/_/\_\ \__||_|    |_|    \___|| .__/    /_/   \_\|_|    |___|
                                           |_|
	`)
}
