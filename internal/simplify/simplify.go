package simplify

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/plainterms/legal-analyzer/pkg/models"
)

const (
	// fallbackScore is reported when scoring or summarization fails.
	fallbackScore = 0.1

	wordReductionWeight = 0.3
	complexityWeight    = 0.7

	maxKeyPoints = 3
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	sentenceRE   = regexp.MustCompile(`[.!?]+`)
)

// Simplifier rewrites legal clauses into plain language using an ordered
// substitution table, a keyword-cascade summary and key-point scans. It
// never returns an error: on internal failure the output degrades to the
// substituted text with the floor score and no key points.
type Simplifier struct{}

// New creates a simplifier.
func New() *Simplifier {
	return &Simplifier{}
}

// Simplify produces the plain-language rendering of one clause.
func (s *Simplifier) Simplify(clause string) (result models.SimplifiedClause) {
	original := strings.TrimSpace(clause)
	simplified := applyRules(original)

	defer func() {
		if r := recover(); r != nil {
			result = models.SimplifiedClause{
				Original:   original,
				Simplified: simplified,
				Summary:    "Unable to simplify this clause.",
				KeyPoints:  nil,
				Score:      fallbackScore,
			}
		}
	}()

	return models.SimplifiedClause{
		Original:   original,
		Simplified: simplified,
		Summary:    summarize(simplified),
		KeyPoints:  keyPoints(simplified),
		Score:      score(original, simplified),
	}
}

// applyRules runs the substitution table in order, then the structure
// rules, then collapses whitespace.
func applyRules(text string) string {
	simplified := text
	for _, r := range substitutionRules {
		simplified = r.pattern.ReplaceAllString(simplified, r.replace)
	}
	for _, r := range structureRules {
		simplified = r.pattern.ReplaceAllString(simplified, r.replace)
	}
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(simplified, " "))
}

// summarize picks the plain-English summary from the keyword cascade; the
// first matching category wins. Clauses matching no category fall back to
// their first sentence, then to a generic message.
func summarize(clause string) string {
	lower := strings.ToLower(clause)

	for _, sr := range summaryCascade {
		for _, kw := range sr.keywords {
			if kw == "$" {
				if strings.Contains(clause, "$") {
					return sr.summary
				}
				continue
			}
			if strings.Contains(lower, kw) {
				return sr.summary
			}
		}
	}

	sentences := sentenceRE.Split(clause, -1)
	if len(sentences) > 0 {
		first := strings.TrimSpace(sentences[0])
		if len(first) > 20 {
			return fmt.Sprintf("In simple terms: %s.", strings.ToLower(first))
		}
	}
	return genericSummary
}

// keyPoints collects up to three findings: monetary amounts, durations,
// percentages, obligation keywords and condition keywords. Each present
// category contributes one line naming all its matches.
func keyPoints(clause string) []string {
	var points []string
	lower := strings.ToLower(clause)

	if m := moneyRE.FindAllString(clause, -1); len(m) > 0 {
		points = append(points, "Involves money: "+strings.Join(m, ", "))
	}
	if m := durationRE.FindAllString(clause, -1); len(m) > 0 {
		points = append(points, "Time periods: "+strings.Join(m, ", "))
	}
	if m := percentRE.FindAllString(clause, -1); len(m) > 0 {
		points = append(points, "Percentages: "+strings.Join(m, ", "))
	}
	if m := containedWords(lower, obligationWords); len(m) > 0 {
		points = append(points, "Creates obligations: "+strings.Join(m, ", "))
	}
	if m := containedWords(lower, conditionWords); len(m) > 0 {
		points = append(points, "Has conditions: "+strings.Join(m, ", "))
	}

	if len(points) > maxKeyPoints {
		points = points[:maxKeyPoints]
	}
	return points
}

func containedWords(lower string, words []string) []string {
	var found []string
	for _, w := range words {
		if strings.Contains(lower, w) {
			found = append(found, w)
		}
	}
	return found
}

// score blends word-count reduction with average-word-length reduction
// (weights 0.3/0.7), clamped to [0,1].
func score(original, simplified string) float64 {
	origWords := strings.Fields(original)
	simpWords := strings.Fields(simplified)
	if len(origWords) == 0 {
		return 0
	}

	wordReduction := float64(len(origWords)-len(simpWords)) / float64(len(origWords))

	origAvg := avgWordLen(origWords)
	var complexityReduction float64
	if origAvg > 0 {
		complexityReduction = (origAvg - avgWordLen(simpWords)) / origAvg
	}

	s := wordReduction*wordReductionWeight + complexityReduction*complexityWeight
	return math.Max(0, math.Min(1, s))
}

func avgWordLen(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += len(w)
	}
	return float64(total) / float64(len(words))
}
