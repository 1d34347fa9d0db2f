package classify

import (
	"regexp"
	"strings"
	"testing"
)

func TestClassifyNDA(t *testing.T) {
	c := New()

	text := "This Non-Disclosure Agreement protects confidential information " +
		"and trade secrets shared between the parties."
	result := c.Classify(text)

	if result.PredictedType != "nda" {
		t.Errorf("expected nda, got %q", result.PredictedType)
	}
	if !result.IsConfident {
		t.Error("expected confident classification")
	}
	if result.Confidence <= 0 || result.Confidence > 1 {
		t.Errorf("confidence out of range: %f", result.Confidence)
	}
}

func TestClassifyUnknownBelowThreshold(t *testing.T) {
	c := New()

	result := c.Classify("The quick brown fox jumps over the lazy dog.")

	if result.PredictedType != Unknown {
		t.Errorf("expected unknown, got %q", result.PredictedType)
	}
	if result.IsConfident {
		t.Error("expected not confident")
	}
	if len(result.Scores) != 8 {
		t.Errorf("expected raw scores for all 8 types, got %d", len(result.Scores))
	}
}

func TestClassifyEmptyText(t *testing.T) {
	c := New()

	result := c.Classify("")

	if result.PredictedType != Unknown {
		t.Errorf("expected unknown for empty text, got %q", result.PredictedType)
	}
	if result.Confidence != 0 {
		t.Errorf("expected zero confidence, got %f", result.Confidence)
	}
}

func TestClassifyKeywordCountedOnce(t *testing.T) {
	rules := []Rule{
		{
			Type:     "alpha",
			Keywords: []string{"lease"},
			Weight:   1.0,
		},
	}
	c := NewWithRules(rules)

	once := c.Classify("the lease begins")
	thrice := c.Classify("lease lease lease")

	if once.Scores["alpha"].Score != thrice.Scores["alpha"].Score {
		t.Errorf("keyword repetition changed score: %f vs %f",
			once.Scores["alpha"].Score, thrice.Scores["alpha"].Score)
	}
}

func TestClassifyPatternScoredFlat(t *testing.T) {
	rules := []Rule{
		{
			Type:     "alpha",
			Patterns: []*regexp.Regexp{regexp.MustCompile(`interest\s+rate`)},
			Weight:   1.0,
		},
	}
	c := NewWithRules(rules)

	result := c.Classify("interest rate here, interest rate there, interest rate everywhere")

	if got := result.Scores["alpha"].Score; got != 2.0 {
		t.Errorf("pattern should add flat 2.0 regardless of occurrences, got %f", got)
	}
	if got := len(result.Scores["alpha"].MatchedPatterns); got != 3 {
		t.Errorf("expected 3 recorded pattern matches, got %d", got)
	}
}

func TestClassifyMonotonicity(t *testing.T) {
	c := New()

	base := "This service agreement covers professional services and deliverables."
	baseScore := c.Classify(base).Scores["service_agreement"].Score

	// Adding a unique service keyword strictly increases the score.
	moreScore := c.Classify(base + " The statement of work is attached.").Scores["service_agreement"].Score
	if moreScore <= baseScore {
		t.Errorf("adding keywords did not increase score: %f -> %f", baseScore, moreScore)
	}
}

func TestClassifyTieBreakDeclarationOrder(t *testing.T) {
	rules := []Rule{
		{Type: "first", Keywords: []string{"widget", "gadget"}, Weight: 1.0},
		{Type: "second", Keywords: []string{"widget", "gadget"}, Weight: 1.0},
	}
	c := NewWithRules(rules)

	for i := 0; i < 20; i++ {
		result := c.Classify("a widget and a gadget appear in this contract")
		if result.Scores["first"].Score != result.Scores["second"].Score {
			t.Fatalf("expected identical scores, got %f vs %f",
				result.Scores["first"].Score, result.Scores["second"].Score)
		}
		if !result.IsConfident {
			t.Fatal("expected confident classification at score 2.0")
		}
		if result.PredictedType != "first" {
			t.Fatalf("tie resolved to %q, want earliest-declared %q",
				result.PredictedType, "first")
		}
	}
}

func TestClassifyWeightApplied(t *testing.T) {
	rules := []Rule{
		{Type: "light", Keywords: []string{"token"}, Weight: 1.0},
		{Type: "heavy", Keywords: []string{"token"}, Weight: 3.0},
	}
	c := NewWithRules(rules)

	result := c.Classify("a token appears")

	if result.PredictedType != "heavy" {
		t.Errorf("expected weighted type to win, got %q", result.PredictedType)
	}
	if result.Scores["heavy"].Score != 3.0 {
		t.Errorf("expected weighted score 3.0, got %f", result.Scores["heavy"].Score)
	}
}

func TestCharacterizeNDA(t *testing.T) {
	c := New()

	ch := c.Characterize("The parties mutually agree to keep information secret "+
		"for a period of two years, including payment details.", "nda")

	if ch.Type != "Non-Disclosure Agreement" {
		t.Errorf("unexpected type: %q", ch.Type)
	}
	if ch.Detail["nda_type"] != "Mutual NDA" {
		t.Errorf("expected Mutual NDA, got %q", ch.Detail["nda_type"])
	}
	if !strings.HasPrefix(ch.Detail["duration"], "two years") {
		t.Errorf("expected duration starting with 'two years', got %q", ch.Detail["duration"])
	}
	found := false
	for _, s := range ch.KeySections {
		if s == "Payment" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Payment key section, got %v", ch.KeySections)
	}
}

func TestCharacterizeComplexity(t *testing.T) {
	c := New()

	short := c.Characterize("brief text", "unknown")
	if short.Complexity != "Low" {
		t.Errorf("expected Low complexity, got %q", short.Complexity)
	}

	long := c.Characterize(strings.Repeat("word ", 2500), "unknown")
	if long.Complexity != "High" {
		t.Errorf("expected High complexity, got %q", long.Complexity)
	}
}
