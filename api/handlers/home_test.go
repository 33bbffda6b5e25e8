package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"textprep-app-api/api/dto/mappers"
	"github.com/stretchr/testify/assert"
)

func TestHomeHandler_Home(t *testing.T) {
	handler := NewHomeHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.Home(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	page := rec.Body.String()
	assert.Contains(t, page, "Text Preprocessing Service")
	assert.Contains(t, page, `id="url"`)
	assert.Contains(t, page, `id="text"`)
	assert.Contains(t, page, "/api/clean")
	assert.Contains(t, page, "/api/analyze")
	assert.Contains(t, page, strconv.Itoa(mappers.CleanedTextPreviewLimit))
}

func TestHomeHandler_RegisterRoutes_ExactRootOnly(t *testing.T) {
	mux := http.NewServeMux()
	NewHomeHandler().RegisterRoutes(mux)

	rootReq := httptest.NewRequest(http.MethodGet, "/", nil)
	rootRec := httptest.NewRecorder()
	mux.ServeHTTP(rootRec, rootReq)
	assert.Equal(t, http.StatusOK, rootRec.Code)

	otherReq := httptest.NewRequest(http.MethodGet, "/somewhere", nil)
	otherRec := httptest.NewRecorder()
	mux.ServeHTTP(otherRec, otherReq)
	assert.Equal(t, http.StatusNotFound, otherRec.Code)
}
