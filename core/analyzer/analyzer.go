// ABOUTME: Descriptive text statistics and naive extractive summaries
// ABOUTME: Tokenization is shared between statistics, summaries and n-gram counting

package analyzer

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"textprep-app-api/core/domain"
	"textprep-app-api/core/errors"
)

// summarySentences is the number of sentences kept in the summary.
const summarySentences = 3

// topWords is the number of entries reported in MostCommonWords.
const topWords = 10

// sentenceSegments matches a sentence body together with its trailing
// run of terminators, so summaries can keep the punctuation.
var sentenceSegments = regexp.MustCompile(`[^.!?]+[.!?]*`)

var terminatorStrip = strings.NewReplacer(".", "", "!", "", "?", "")

// Analyze computes descriptive statistics and a first-sentences summary
// for text. The text is analyzed as-given apart from trimming; callers
// wanting boilerplate removal clean the text first. Returns an
// EmptyInputError when text is empty or whitespace-only.
func Analyze(text string) (*domain.Analysis, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, &errors.EmptyInputError{}
	}

	words := Words(trimmed)
	sentences := Sentences(trimmed)

	stats := domain.TextStatistics{
		Characters:        utf8.RuneCountInString(trimmed),
		Words:             len(words),
		Sentences:         len(sentences),
		AvgWordLength:     avgWordLength(words),
		AvgSentenceLength: avgSentenceLength(words, sentences),
		MostCommonWords:   MostCommonWords(words, topWords),
	}

	return &domain.Analysis{
		CleanedText: trimmed,
		Statistics:  stats,
		Summary:     joinSentences(sentences, summarySentences),
	}, nil
}

// Words splits text into word tokens. Sentence terminators are removed
// first, so tokens made of bare punctuation do not count as words.
func Words(text string) []string {
	return strings.Fields(terminatorStrip.Replace(text))
}

// Sentences returns the sentences of text, each trimmed and carrying its
// terminating punctuation. A segment that is blank once terminators and
// whitespace are removed does not count as a sentence.
func Sentences(text string) []string {
	segments := sentenceSegments.FindAllString(text, -1)
	sentences := make([]string, 0, len(segments))
	for _, segment := range segments {
		if strings.TrimSpace(terminatorStrip.Replace(segment)) == "" {
			continue
		}
		sentences = append(sentences, strings.TrimSpace(segment))
	}
	return sentences
}

// Summarize returns the first max sentences of text joined by single
// spaces, terminating punctuation included.
func Summarize(text string, max int) string {
	return joinSentences(Sentences(text), max)
}

// MostCommonWords returns the max most frequent words, lowercased, most
// frequent first. Ties keep first-occurrence order.
func MostCommonWords(words []string, max int) []domain.WordCount {
	counts := make(map[string]int, len(words))
	firstSeen := make(map[string]int, len(words))

	for i, word := range words {
		lower := strings.ToLower(word)
		if _, seen := counts[lower]; !seen {
			firstSeen[lower] = i
		}
		counts[lower]++
	}

	ranked := make([]domain.WordCount, 0, len(counts))
	for word, count := range counts {
		ranked = append(ranked, domain.WordCount{Word: word, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Word] < firstSeen[ranked[j].Word]
	})

	if len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}

func joinSentences(sentences []string, max int) string {
	if len(sentences) > max {
		sentences = sentences[:max]
	}
	return strings.Join(sentences, " ")
}

func avgWordLength(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, word := range words {
		total += utf8.RuneCountInString(word)
	}
	return round2(float64(total) / float64(len(words)))
}

func avgSentenceLength(words, sentences []string) float64 {
	if len(sentences) == 0 {
		return 0
	}
	return round2(float64(len(words)) / float64(len(sentences)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
