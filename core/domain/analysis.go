// ABOUTME: Analysis domain models for text statistics and summaries
// ABOUTME: Defines the structures produced by the analyzer service

package domain

// WordCount pairs a word with its number of occurrences
type WordCount struct {
	// Word is the lowercased token
	Word string

	// Count is the number of occurrences
	Count int
}

// TextStatistics holds descriptive statistics over a text
type TextStatistics struct {
	// Characters is the number of characters (runes) in the text
	Characters int

	// Words is the number of word tokens
	Words int

	// Sentences is the number of sentences
	Sentences int

	// AvgWordLength is the mean word length, rounded to 2 decimals.
	// Zero when the text contains no words.
	AvgWordLength float64

	// AvgSentenceLength is the mean words per sentence, rounded to 2
	// decimals. Zero when the text contains no sentences.
	AvgSentenceLength float64

	// MostCommonWords lists the ten most frequent words, most
	// frequent first. Ties keep first-occurrence order.
	MostCommonWords []WordCount
}

// Analysis is the full result of cleaning and analyzing a text
type Analysis struct {
	// CleanedText is the full cleaned text the statistics describe
	CleanedText string

	// Statistics are the descriptive statistics for CleanedText
	Statistics TextStatistics

	// Summary is a naive extractive summary (first sentences, with
	// their terminating punctuation)
	Summary string
}
