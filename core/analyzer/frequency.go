// ABOUTME: N-gram frequency counting with additive smoothing
// ABOUTME: Frequency tables persist to JSON with ||-joined n-gram keys

package analyzer

import (
	"encoding/json"
	"os"
	"strings"
)

// ngramSeparator joins the tokens of an n-gram into a single map key.
// It survives a JSON round trip, unlike a slice key.
const ngramSeparator = "||"

// NGramCounts counts n-gram occurrences over tokens. For n > 1 the keys
// are the n-gram tokens joined by "||"; for n == 1 they are the tokens
// themselves.
func NGramCounts(tokens []string, n int) map[string]int {
	counts := make(map[string]int)
	if n < 1 || len(tokens) < n {
		return counts
	}

	if n == 1 {
		for _, token := range tokens {
			counts[token]++
		}
		return counts
	}

	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], ngramSeparator)]++
	}
	return counts
}

// NGramTokens splits a frequency key back into its n-gram tokens.
func NGramTokens(key string) []string {
	return strings.Split(key, ngramSeparator)
}

// Chars splits text into single-character tokens for character-level
// n-gram counting.
func Chars(text string) []string {
	chars := make([]string, 0, len(text))
	for _, r := range text {
		chars = append(chars, string(r))
	}
	return chars
}

// Probabilities converts counts to relative frequencies. A non-zero
// smoothing value applies additive smoothing, so unseen-but-listed
// n-grams never reach probability zero.
func Probabilities(counts map[string]int, smoothing float64) map[string]float64 {
	total := smoothing * float64(len(counts))
	for _, count := range counts {
		total += float64(count)
	}

	probabilities := make(map[string]float64, len(counts))
	if total == 0 {
		return probabilities
	}
	for ngram, count := range counts {
		probabilities[ngram] = (float64(count) + smoothing) / total
	}
	return probabilities
}

// SaveFrequencies writes a frequency table to path as indented JSON.
func SaveFrequencies(counts map[string]int, path string) error {
	data, err := json.MarshalIndent(counts, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadFrequencies reads a frequency table previously written by
// SaveFrequencies.
func LoadFrequencies(path string) (map[string]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
