package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSanitizeSite(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"standard http", "http://www.gutenberg.org/files/11/11-0.txt", "www.gutenberg.org"},
		{"standard https", "https://Example.com/path", "example.com"},
		{"no scheme", "example.com/path", "example.com"},
		{"just host", "example.com", "example.com"},
		{"host with port", "example.com:8080", "example.com"},
		{"ip address", "192.168.1.1", "192.168.1.1"},
		{"invalid url", "http://%", "unknown"},
		{"empty string", "", "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeSite(tc.input); got != tc.expected {
				t.Errorf("SanitizeSite(%q) = %q; want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestInit(t *testing.T) {
	// Reset collectors for testing purposes.
	httpRequestsTotal = nil
	httpRequestDurationSeconds = nil
	documentsTotal = nil
	documentCharactersTotal = nil
	analysesTotal = nil

	// Call Init multiple times to test idempotency.
	Init()
	Init()

	if httpRequestsTotal == nil || httpRequestDurationSeconds == nil ||
		documentsTotal == nil || documentCharactersTotal == nil || analysesTotal == nil {
		t.Fatal("Init() did not initialize metrics collectors")
	}

	// A simple check to see if a metric can be used.
	documentsTotal.WithLabelValues("www.gutenberg.org", "success").Inc()
	if val := testutil.ToFloat64(documentsTotal); val != 1 {
		t.Errorf("Expected documentsTotal to be 1, got %f", val)
	}
}

func TestObserveDocument(t *testing.T) {
	Init()

	before := testutil.ToFloat64(documentCharactersTotal.WithLabelValues("www.gutenberg.org"))
	ObserveDocument("https://www.gutenberg.org/files/11/11-0.txt", "success", 26)
	after := testutil.ToFloat64(documentCharactersTotal.WithLabelValues("www.gutenberg.org"))

	if after-before != 26 {
		t.Errorf("Expected character counter to grow by 26, grew by %f", after-before)
	}

	// Zero characters must not add a sample to the character counter
	errBefore := testutil.ToFloat64(documentsTotal.WithLabelValues("example.com", "error"))
	ObserveDocument("https://example.com/book.txt", "error", 0)
	errAfter := testutil.ToFloat64(documentsTotal.WithLabelValues("example.com", "error"))

	if errAfter-errBefore != 1 {
		t.Errorf("Expected document counter to grow by 1, grew by %f", errAfter-errBefore)
	}
}

func TestObserveHTTPRequest(t *testing.T) {
	Init()

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("POST", "200"))
	ObserveHTTPRequest("POST", "/api/clean", 200, 150*time.Millisecond)
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("POST", "200"))

	if after-before != 1 {
		t.Errorf("Expected request counter to grow by 1, grew by %f", after-before)
	}
}

func TestObserveAnalysis(t *testing.T) {
	Init()

	before := testutil.ToFloat64(analysesTotal.WithLabelValues("analyze"))
	ObserveAnalysis("analyze")
	after := testutil.ToFloat64(analysesTotal.WithLabelValues("analyze"))

	if after-before != 1 {
		t.Errorf("Expected analysis counter to grow by 1, grew by %f", after-before)
	}
}

// Fuzz test for SanitizeSite.
func FuzzSanitizeSite(f *testing.F) {
	testcases := []string{"http://example.com", "https://www.gutenberg.org/files/11/11-0.txt", "ftp://example.com"}
	for _, tc := range testcases {
		f.Add(tc)
	}
	f.Fuzz(func(t *testing.T, orig string) {
		sanitized := SanitizeSite(orig)
		if sanitized == "" {
			t.Errorf("SanitizeSite(%q) returned an empty string", orig)
		}
	})
}
