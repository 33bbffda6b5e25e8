// ABOUTME: Preprocess service orchestrates fetching, cleaning and analyzing texts
// ABOUTME: Provides business logic for the clean and analyze operations independent of HTTP layer

package preprocess

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"textprep-app-api/core/analyzer"
	"textprep-app-api/core/cleaner"
	"textprep-app-api/core/config"
	"textprep-app-api/core/domain"
	"textprep-app-api/core/errors"
	"textprep-app-api/core/interfaces"
)

// PreprocessService fetches, cleans and analyzes plain-text documents
type PreprocessService struct {
	deps interfaces.Dependencies
	cfg  config.PreprocessConfig
}

// NewPreprocessService creates a new preprocess service instance
func NewPreprocessService(deps interfaces.Dependencies, opts ...config.PreprocessOption) *PreprocessService {
	return &PreprocessService{
		deps: deps,
		cfg:  config.NewPreprocessConfig(opts...),
	}
}

// validateURL checks that rawURL points to a fetchable plain-text file
func (s *PreprocessService) validateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return &errors.ValidationError{Field: "url", Message: "URL cannot be empty"}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return &errors.ValidationError{Field: "url", Message: "invalid URL format"}
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &errors.ValidationError{Field: "url", Message: "URL scheme must be http or https"}
	}

	// Gutenberg serves books in several formats; only the plain-text
	// format is supported.
	if !strings.HasSuffix(parsed.Path, ".txt") {
		return &errors.ValidationError{Field: "url", Message: "URL must point to a .txt file"}
	}

	return nil
}

// ProcessURL fetches the document at rawURL, strips Gutenberg boilerplate,
// normalizes the text and returns the analysis of the cleaned result.
func (s *PreprocessService) ProcessURL(ctx context.Context, rawURL string) (*domain.Analysis, error) {
	if err := s.validateURL(rawURL); err != nil {
		return nil, err
	}

	doc, err := s.fetchDocument(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	cleaned := cleaner.Clean(doc.Content)

	analysis, err := analyzer.Analyze(cleaned)
	if err != nil {
		return nil, errors.WrapError(err, "document has no analyzable content")
	}

	s.deps.Logger.Info("Processed document", map[string]interface{}{
		"url":       rawURL,
		"words":     analysis.Statistics.Words,
		"sentences": analysis.Statistics.Sentences,
	})

	return analysis, nil
}

// AnalyzeText computes statistics over caller-supplied text. The text is
// analyzed as-given apart from trimming; no boilerplate removal happens.
func (s *PreprocessService) AnalyzeText(ctx context.Context, text string) (*domain.Analysis, error) {
	analysis, err := analyzer.Analyze(text)
	if err != nil {
		return nil, err
	}

	s.deps.Logger.Debug("Analyzed text", map[string]interface{}{
		"characters": analysis.Statistics.Characters,
		"words":      analysis.Statistics.Words,
	})

	return analysis, nil
}

// fetchDocument returns the document at rawURL, from cache when possible
func (s *PreprocessService) fetchDocument(ctx context.Context, rawURL string) (*domain.Document, error) {
	if doc := s.getCachedDocument(ctx, rawURL); doc != nil {
		return doc, nil
	}

	if s.deps.HTTPClient == nil {
		return nil, fmt.Errorf("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, rawURL)
	if err != nil {
		return nil, &errors.ExternalAPIError{
			Message: err.Error(),
			API:     "source",
		}
	}

	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() != 200 {
		return nil, &errors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "failed to fetch text from the provided URL",
			API:        "source",
		}
	}

	data, err := io.ReadAll(io.LimitReader(body, s.cfg.MaxDocumentBytes+1))
	if err != nil {
		return nil, &errors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "failed to read document body",
			API:        "source",
		}
	}
	if int64(len(data)) > s.cfg.MaxDocumentBytes {
		return nil, &errors.ValidationError{Field: "url", Message: "document exceeds the maximum supported size"}
	}

	doc := &domain.Document{
		URL:       rawURL,
		Content:   string(data),
		FetchedAt: time.Now(),
	}

	// Cache the document (ignore cache errors)
	s.cacheDocument(ctx, doc)

	return doc, nil
}

// getCachedDocument returns the cached document for rawURL, or nil
func (s *PreprocessService) getCachedDocument(ctx context.Context, rawURL string) *domain.Document {
	if s.deps.Cache == nil {
		return nil
	}

	data, err := s.deps.Cache.Get(ctx, documentCacheKey(rawURL))
	if err != nil || data == nil {
		return nil
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}

	s.deps.Logger.Debug("Document cache hit", map[string]interface{}{
		"url": rawURL,
	})
	return &doc
}

// cacheDocument stores a fetched document, logging but tolerating failures
func (s *PreprocessService) cacheDocument(ctx context.Context, doc *domain.Document) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return
	}

	if err := s.deps.Cache.Set(ctx, documentCacheKey(doc.URL), data, s.cfg.DocumentCacheTTL); err != nil {
		s.deps.Logger.Warn("Failed to cache document", map[string]interface{}{
			"url":   doc.URL,
			"error": err.Error(),
		})
	}
}

func documentCacheKey(rawURL string) string {
	return fmt.Sprintf("document:%s", rawURL)
}
