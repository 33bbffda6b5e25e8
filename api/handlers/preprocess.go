// ABOUTME: Preprocessing handlers for the JSON API
// ABOUTME: Provides HTTP endpoints for document cleaning and text analysis

package handlers

import (
	"encoding/json"
	"net/http"

	"textprep-app-api/api/dto/mappers"
	"textprep-app-api/api/dto/requests"
	"textprep-app-api/core/errors"
	"textprep-app-api/core/interfaces"
	"textprep-app-api/pkg/metrics"
)

// PreprocessHandler handles document preprocessing HTTP requests
type PreprocessHandler struct {
	preprocessService interfaces.PreprocessService
}

// NewPreprocessHandler creates a new preprocess handler
func NewPreprocessHandler(preprocessService interfaces.PreprocessService) *PreprocessHandler {
	return &PreprocessHandler{
		preprocessService: preprocessService,
	}
}

// RegisterRoutes registers all preprocessing routes
func (h *PreprocessHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/clean", h.CleanURL)
	mux.HandleFunc("POST /api/analyze", h.AnalyzeText)
}

// CleanURL handles the POST /api/clean endpoint
func (h *PreprocessHandler) CleanURL(w http.ResponseWriter, r *http.Request) {
	var req requests.CleanURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &errors.ValidationError{Field: "body", Message: "request body must be valid JSON"})
		return
	}

	analysis, err := h.preprocessService.ProcessURL(r.Context(), req.URL)
	if err != nil {
		metrics.ObserveDocument(req.URL, "error", 0)
		writeError(w, err)
		return
	}

	metrics.ObserveDocument(req.URL, "success", analysis.Statistics.Characters)
	metrics.ObserveAnalysis("clean")
	writeJSON(w, http.StatusOK, mappers.ToCleanTextResponse(analysis))
}

// AnalyzeText handles the POST /api/analyze endpoint
func (h *PreprocessHandler) AnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req requests.AnalyzeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &errors.ValidationError{Field: "body", Message: "request body must be valid JSON"})
		return
	}

	analysis, err := h.preprocessService.AnalyzeText(r.Context(), req.Text)
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.ObserveAnalysis("analyze")
	writeJSON(w, http.StatusOK, mappers.ToAnalyzeTextResponse(analysis))
}
