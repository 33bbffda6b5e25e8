// ABOUTME: Fallback handler for unregistered routes
// ABOUTME: Returns a JSON 404 instead of the default plain-text response

package handlers

import (
	"net/http"

	"textprep-app-api/core/errors"
)

// NotFound handles requests that match no registered route
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, &errors.NotFoundError{Resource: "route", ID: r.URL.Path})
}
