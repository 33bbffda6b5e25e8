// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"encoding/json"
	"net/http"

	"textprep-app-api/api/dto/responses"
	"textprep-app-api/core/errors"
)

// writeJSON writes body as JSON with the given status code
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError converts a domain error to a JSON failure response
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errorStatus(err), responses.ErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}

// errorStatus maps domain errors to HTTP status codes
func errorStatus(err error) int {
	// Check for specific error types
	if errors.IsValidation(err) || errors.IsEmptyInput(err) {
		return http.StatusBadRequest
	}

	if errors.IsNotFound(err) {
		return http.StatusNotFound
	}

	if errors.IsExternalAPI(err) {
		// Upstream fetch failures surface as a bad gateway regardless
		// of the upstream status code.
		return http.StatusBadGateway
	}

	// Default to internal server error for unknown errors
	return http.StatusInternalServerError
}
