package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"textprep-app-api/api/dto/responses"
	"github.com/stretchr/testify/assert"
)

func TestNotFound_ReturnsJSON404(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	rec := httptest.NewRecorder()
	NotFound(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body responses.ErrorResponse
	err := json.Unmarshal(rec.Body.Bytes(), &body)
	assert.NoError(t, err)
	assert.False(t, body.Success)
	assert.Contains(t, body.Error, "/no/such/route")
}
