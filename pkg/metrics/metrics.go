// ABOUTME: Prometheus collectors for the text preprocessing service
// ABOUTME: Tracks HTTP traffic, document fetches and analysis operations

package metrics

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDurationSeconds *prometheus.HistogramVec
	documentsTotal             *prometheus.CounterVec
	documentCharactersTotal    *prometheus.CounterVec
	analysesTotal              *prometheus.CounterVec

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests, labeled by method and code.",
			},
			[]string{"method", "code"},
		)

		httpRequestDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by method and route.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		)

		documentsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "textprep_documents_total",
				Help: "Total number of documents processed, labeled by site and status.",
			},
			[]string{"site", "status"},
		)

		documentCharactersTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "textprep_document_characters_total",
				Help: "Total characters of cleaned document text, labeled by site.",
			},
			[]string{"site"},
		)

		analysesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "textprep_analyses_total",
				Help: "Total number of analyses performed, labeled by operation.",
			},
			[]string{"operation"},
		)
	})
}

// SanitizeSite sanitizes a URL to extract a lowercase hostname.
// It returns "unknown" if the URL is invalid.
func SanitizeSite(rawURL string) string {
	if !strings.HasPrefix(rawURL, "http") {
		rawURL = "http://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	return strings.ToLower(u.Hostname())
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveHTTPRequest increments the HTTP request metrics.
func ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDocument increments the document metrics.
func ObserveDocument(site string, status string, characters int) {
	sanitizedSite := SanitizeSite(site)
	documentsTotal.WithLabelValues(sanitizedSite, status).Inc()
	if characters > 0 {
		documentCharactersTotal.WithLabelValues(sanitizedSite).Add(float64(characters))
	}
}

// ObserveAnalysis increments the analysis counter for the given operation.
func ObserveAnalysis(operation string) {
	analysesTotal.WithLabelValues(operation).Inc()
}
