// ABOUTME: Gutenberg boilerplate removal and text normalization
// ABOUTME: Pure text transformations used by the preprocess service

package cleaner

import (
	"regexp"
	"strings"
)

// Project Gutenberg wraps book content in license boilerplate delimited by
// marker lines. Both historical marker spellings appear in the archive.
var startMarkers = []string{
	"*** START OF THIS PROJECT GUTENBERG",
	"*** START OF THE PROJECT GUTENBERG",
}

var endMarkers = []string{
	"*** END OF THIS PROJECT GUTENBERG",
	"*** END OF THE PROJECT GUTENBERG",
}

var (
	excessNewlines  = regexp.MustCompile(`\n{3,}`)
	repeatedSpaces  = regexp.MustCompile(` {2,}`)
	disallowedChars = regexp.MustCompile(`[^\p{L}\p{N}\s.!?,;:'"()-]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// typography maps curly quotes and long dashes to their ASCII forms.
var typography = strings.NewReplacer(
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
	"‘", "'", // left single quotation mark
	"’", "'", // right single quotation mark
	"—", "-", // em dash
	"–", "-", // en dash
)

// Clean strips Gutenberg boilerplate from raw text and normalizes what
// remains. The result is idempotent under Clean as long as the book
// content itself contains no marker lines.
func Clean(raw string) string {
	return Normalize(StripBoilerplate(raw))
}

// StripBoilerplate keeps only the content between the Gutenberg start and
// end markers. Content begins after the last start marker seen before the
// first end marker and ends before that end marker. Texts with missing or
// malformed markers degrade gracefully: a missing start marker keeps the
// text from the beginning, a missing end marker keeps it to the end.
func StripBoilerplate(raw string) string {
	lines := strings.Split(raw, "\n")
	start := 0
	end := len(lines)

	for i, line := range lines {
		if containsAny(line, startMarkers) {
			start = i + 1
			continue
		}
		if containsAny(line, endMarkers) {
			end = i
			break
		}
	}

	text := strings.Join(lines[start:end], "\n")
	text = excessNewlines.ReplaceAllString(text, "\n\n")
	text = repeatedSpaces.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Normalize standardizes typography, removes characters outside the
// allowlist and collapses whitespace runs to single spaces. Letters,
// digits, whitespace and common punctuation survive; anything else
// becomes a space before the runs collapse. Case is preserved.
func Normalize(text string) string {
	text = typography.Replace(text)
	text = disallowedChars.ReplaceAllString(text, " ")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func containsAny(line string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
