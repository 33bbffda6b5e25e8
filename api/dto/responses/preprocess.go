// ABOUTME: Response DTOs for text preprocessing API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// WordCountResponse represents one entry of the word frequency ranking
type WordCountResponse struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// StatisticsResponse represents text statistics in API responses
type StatisticsResponse struct {
	// Characters is the rune count of the analyzed text
	Characters int `json:"characters"`

	// Words is the token count after stripping terminators
	Words int `json:"words"`

	// Sentences is the number of sentence segments
	Sentences int `json:"sentences"`

	// AvgWordLength is the mean word length, rounded to 2 decimals
	AvgWordLength float64 `json:"avg_word_length"`

	// AvgSentenceLength is the mean words per sentence, rounded to 2 decimals
	AvgSentenceLength float64 `json:"avg_sentence_length"`

	// MostCommonWords ranks the ten most frequent words, lowercased
	MostCommonWords []WordCountResponse `json:"most_common_words"`
}

// CleanTextResponse represents the response for cleaning a document by URL
type CleanTextResponse struct {
	Success bool `json:"success"`

	// CleanedText is a preview capped at 500 characters; the statistics
	// cover the full cleaned text
	CleanedText string `json:"cleaned_text"`

	Statistics StatisticsResponse `json:"statistics"`

	// Summary holds at most the first three sentences of the cleaned text
	Summary string `json:"summary"`
}

// AnalyzeTextResponse represents the response for analyzing raw text
type AnalyzeTextResponse struct {
	Success    bool               `json:"success"`
	Statistics StatisticsResponse `json:"statistics"`
}

// ErrorResponse represents a failure body for any endpoint
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
