// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"textprep-app-api/core/domain"
)

// PreprocessService fetches, cleans and analyzes Gutenberg texts
type PreprocessService interface {
	// ProcessURL fetches a plain-text document, strips Gutenberg
	// boilerplate, normalizes the text and returns its analysis.
	ProcessURL(ctx context.Context, url string) (*domain.Analysis, error)

	// AnalyzeText computes statistics over caller-supplied text as-given.
	AnalyzeText(ctx context.Context, text string) (*domain.Analysis, error)
}
