package normalize

import (
	"regexp"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/plainterms/legal-analyzer/pkg/models"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	// Allow word characters in any script, common punctuation, brackets,
	// quotes and currency/percent symbols; everything else is stripped.
	disallowedRE = regexp.MustCompile(`[^\p{L}\p{N}_\s.,;:!?\-()\[\]"'/$%]`)
	sentenceRE   = regexp.MustCompile(`[.!?]+`)
)

// Document is the cleaned text plus its statistics. Immutable after Normalize.
type Document struct {
	Cleaned    string
	Statistics models.TextStatistics
}

// Normalize collapses whitespace, strips characters outside the allow-list
// and computes basic text statistics. It never fails; empty input yields
// zeroed statistics.
func Normalize(raw string) Document {
	cleaned := whitespaceRE.ReplaceAllString(raw, " ")
	cleaned = disallowedRE.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	words := strings.Fields(cleaned)

	sentences := 0
	for _, s := range sentenceRE.Split(cleaned, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}

	stats := models.TextStatistics{
		WordCount:      len(words),
		CharacterCount: len(cleaned),
		SentenceCount:  sentences,
	}

	if len(words) > 0 {
		lengths := make([]float64, len(words))
		for i, w := range words {
			lengths[i] = float64(len(w))
		}
		stats.AvgWordLength = stat.Mean(lengths, nil)
	}
	if sentences > 0 {
		stats.AvgSentenceLength = float64(len(words)) / float64(sentences)
	}

	return Document{Cleaned: cleaned, Statistics: stats}
}

// Sentences splits cleaned text into sentences, dropping fragments of ten
// characters or fewer.
func Sentences(text string) []string {
	parts := sentenceRE.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) > 10 {
			sentences = append(sentences, p)
		}
	}
	return sentences
}
