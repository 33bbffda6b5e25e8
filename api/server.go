// ABOUTME: API server assembly and route wiring
// ABOUTME: Builds the middleware chain around the route mux

package api

import (
	"net/http"

	"textprep-app-api/api/handlers"
	"textprep-app-api/api/middleware"
	"textprep-app-api/core/interfaces"
	"textprep-app-api/pkg/metrics"
	"github.com/rs/cors"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger
}

// NewAPI creates the route mux and a CORS-wrapped handler around it.
// Feature handlers register their routes on the returned mux; the
// returned handler is what the HTTP server serves.
func NewAPI() (*http.ServeMux, http.Handler) {
	mux := newMux()
	return mux, corsHandler().Handler(mux)
}

// NewAPIWithMiddleware creates a new API with the full middleware chain
func NewAPIWithMiddleware(cfg APIConfig) (*http.ServeMux, http.Handler) {
	mux := newMux()

	var handler http.Handler = mux
	if cfg.Logger != nil {
		handler = middleware.RecoveryMiddleware(cfg.Logger)(handler)
	}
	handler = middleware.MetricsMiddleware()(handler)
	if cfg.Logger != nil {
		handler = middleware.RequestLoggingMiddleware(cfg.Logger)(handler)
	}

	// CORS runs before everything else
	handler = corsHandler().Handler(handler)

	return mux, handler
}

// newMux creates the mux with the routes every deployment carries
func newMux() *http.ServeMux {
	mux := http.NewServeMux()

	// Prometheus exposition
	mux.Handle("GET /metrics", metrics.Handler())

	// Anything that matches no registered route gets a JSON 404
	mux.HandleFunc("/", handlers.NotFound)

	return mux
}

func corsHandler() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	})
}
