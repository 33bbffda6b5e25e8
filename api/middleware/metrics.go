// ABOUTME: Metrics middleware recording request counts and latencies
// ABOUTME: Feeds the Prometheus collectors exposed on /metrics

package middleware

import (
	"net/http"
	"time"

	"textprep-app-api/pkg/metrics"
)

// MetricsMiddleware creates a middleware that records Prometheus metrics
// for every request
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(wrapped, r)

			metrics.ObserveHTTPRequest(r.Method, routeLabel(r), wrapped.statusCode, time.Since(start))
		})
	}
}

// routeLabel keeps the route label cardinality bounded
func routeLabel(r *http.Request) string {
	switch r.URL.Path {
	case "/", "/health", "/metrics", "/api/clean", "/api/analyze":
		return r.URL.Path
	}
	return "other"
}
