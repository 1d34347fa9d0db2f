package classify

import (
	"math"
	"strings"

	"github.com/plainterms/legal-analyzer/pkg/models"
)

const (
	// Unknown is reported when no rule reaches the score threshold.
	Unknown = "unknown"

	keywordScore = 1.0
	patternScore = 2.0

	// scoreThreshold is the minimum raw score for a confident prediction.
	scoreThreshold = 2.0
	// confidenceScale normalizes raw scores into [0,1].
	confidenceScale = 10.0
)

// Classifier scores text against an ordered registry of document type rules.
//
// Scoring: +1.0 per keyword found (case-insensitive substring, counted once
// per keyword), +2.0 per pattern that matches at least once, multiplied by
// the rule weight. An alternative scorer that adds the per-pattern occurrence
// count instead of a flat 2.0 would change confidence semantics and is
// deliberately not implemented. Ties resolve to the earliest-declared type.
type Classifier struct {
	rules []Rule
}

// New creates a classifier with the built-in rule registry.
func New() *Classifier {
	return &Classifier{rules: defaultRules()}
}

// NewWithRules creates a classifier with a caller-supplied registry.
// Slice order defines tie-break priority.
func NewWithRules(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify scores the text against every registered rule and picks the
// best-supported type, or Unknown when nothing reaches the threshold.
// Scores always carries the full per-type detail.
func (c *Classifier) Classify(text string) models.Classification {
	lower := strings.ToLower(text)

	scores := make(map[string]models.TypeScore, len(c.rules))
	bestIdx := -1
	bestScore := math.Inf(-1)

	for i, rule := range c.rules {
		ts := scoreRule(rule, lower)
		scores[rule.Type] = ts

		// Strictly greater keeps the earliest-declared type on ties.
		if ts.Score > bestScore {
			bestScore = ts.Score
			bestIdx = i
		}
	}

	result := models.Classification{
		PredictedType: Unknown,
		Scores:        scores,
	}
	if bestIdx < 0 {
		return result
	}

	best := scores[c.rules[bestIdx].Type]
	result.Confidence = best.Confidence
	result.IsConfident = best.Score >= scoreThreshold
	if result.IsConfident {
		result.PredictedType = c.rules[bestIdx].Type
	}
	return result
}

func scoreRule(rule Rule, lower string) models.TypeScore {
	score := 0.0
	var matchedKeywords, matchedPatterns []string

	for _, kw := range rule.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			score += keywordScore
			matchedKeywords = append(matchedKeywords, kw)
		}
	}

	for _, p := range rule.Patterns {
		matches := p.FindAllString(lower, -1)
		if len(matches) > 0 {
			score += patternScore
			matchedPatterns = append(matchedPatterns, matches...)
		}
	}

	score *= rule.Weight

	return models.TypeScore{
		Score:           score,
		MatchedKeywords: matchedKeywords,
		MatchedPatterns: matchedPatterns,
		Confidence:      math.Min(score/confidenceScale, 1.0),
	}
}
