// ABOUTME: Panic recovery middleware for API endpoints
// ABOUTME: Converts handler panics into JSON 500 responses

package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"textprep-app-api/core/interfaces"
)

// RecoveryMiddleware creates a middleware that recovers from handler panics
func RecoveryMiddleware(logger interfaces.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Panic recovered", map[string]interface{}{
						"request_id": RequestIDFromContext(r.Context()),
						"method":     r.Method,
						"path":       r.URL.Path,
						"panic":      fmt.Sprintf("%v", rec),
						"stack":      string(debug.Stack()),
					})

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"success":false,"error":"internal server error"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
