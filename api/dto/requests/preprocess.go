// ABOUTME: Request DTOs for text preprocessing API endpoints
// ABOUTME: Defines the JSON bodies accepted by the clean and analyze endpoints

package requests

// CleanURLRequest represents the request body for cleaning a document by URL
type CleanURLRequest struct {
	// URL is the plain-text document to fetch and process
	URL string `json:"url"`
}

// AnalyzeTextRequest represents the request body for analyzing raw text
type AnalyzeTextRequest struct {
	// Text is analyzed as given, without boilerplate cleaning
	Text string `json:"text"`
}
