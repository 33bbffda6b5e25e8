// ABOUTME: Document domain model represents a fetched plain-text source
// ABOUTME: Carries the raw content and fetch metadata used by the preprocess service

package domain

import "time"

// Document represents a plain-text document fetched from a source URL
type Document struct {
	// URL is the source the document was fetched from
	URL string `json:"url"`

	// Content is the raw text as served by the source
	Content string `json:"content"`

	// FetchedAt is when the document was retrieved
	FetchedAt time.Time `json:"fetched_at"`
}
