// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"textprep-app-api/api/dto/responses"
	"textprep-app-api/core/domain"
)

// CleanedTextPreviewLimit caps how many characters of cleaned text the
// clean endpoint echoes back
const CleanedTextPreviewLimit = 500

// ToStatisticsResponse converts domain TextStatistics to a StatisticsResponse DTO
func ToStatisticsResponse(stats domain.TextStatistics) responses.StatisticsResponse {
	words := make([]responses.WordCountResponse, 0, len(stats.MostCommonWords))
	for _, wc := range stats.MostCommonWords {
		words = append(words, responses.WordCountResponse{
			Word:  wc.Word,
			Count: wc.Count,
		})
	}

	return responses.StatisticsResponse{
		Characters:        stats.Characters,
		Words:             stats.Words,
		Sentences:         stats.Sentences,
		AvgWordLength:     stats.AvgWordLength,
		AvgSentenceLength: stats.AvgSentenceLength,
		MostCommonWords:   words,
	}
}

// ToCleanTextResponse converts a domain Analysis to a CleanTextResponse DTO.
// The cleaned text is truncated to a preview; statistics stay computed over
// the full text.
func ToCleanTextResponse(analysis *domain.Analysis) *responses.CleanTextResponse {
	if analysis == nil {
		return nil
	}

	return &responses.CleanTextResponse{
		Success:     true,
		CleanedText: previewText(analysis.CleanedText),
		Statistics:  ToStatisticsResponse(analysis.Statistics),
		Summary:     analysis.Summary,
	}
}

// ToAnalyzeTextResponse converts a domain Analysis to an AnalyzeTextResponse DTO
func ToAnalyzeTextResponse(analysis *domain.Analysis) *responses.AnalyzeTextResponse {
	if analysis == nil {
		return nil
	}

	return &responses.AnalyzeTextResponse{
		Success:    true,
		Statistics: ToStatisticsResponse(analysis.Statistics),
	}
}

// previewText truncates text to the preview limit without splitting a
// multi-byte character
func previewText(text string) string {
	runes := []rune(text)
	if len(runes) <= CleanedTextPreviewLimit {
		return text
	}
	return string(runes[:CleanedTextPreviewLimit])
}
