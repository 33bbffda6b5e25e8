// ABOUTME: Health check handler for service liveness probes
// ABOUTME: Reports a static healthy status

package handlers

import (
	"net/http"

	"textprep-app-api/api/dto/responses"
)

// HealthHandler handles health check HTTP requests
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// RegisterRoutes registers the health check route
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.Health)
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, responses.HealthResponse{
		Status:  "healthy",
		Message: "Text preprocessing service is running",
	})
}
