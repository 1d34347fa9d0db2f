package entity

import (
	"strings"

	"github.com/plainterms/legal-analyzer/pkg/models"
)

const (
	contextWindow = 50
	defaultScore  = 0.8

	// maxPerPattern caps party and obligation matches per pattern.
	maxPerPattern = 5
)

// Extractor runs independent regex families over text. A failure in one
// family yields an empty list for that family only; extraction as a whole
// never returns an error.
type Extractor struct{}

// New creates an entity extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract collects all entity families from the text. Entities within a
// family are unique by case-insensitive text; the first occurrence keeps its
// span and context.
func (e *Extractor) Extract(text string) map[string][]models.Entity {
	result := make(map[string][]models.Entity, len(families))
	for _, fam := range families {
		result[fam.name] = extractFamily(text, fam)
	}
	return result
}

func extractFamily(text string, fam family) (entities []models.Entity) {
	defer func() {
		// A malformed rule table must not take down the other families.
		if r := recover(); r != nil {
			entities = nil
		}
	}()

	seen := make(map[string]bool)
	for _, p := range fam.patterns {
		for _, loc := range p.FindAllStringIndex(text, -1) {
			matched := text[loc[0]:loc[1]]
			key := strings.ToLower(matched)
			if seen[key] {
				continue
			}
			seen[key] = true
			entities = append(entities, models.Entity{
				Text:       matched,
				Type:       fam.name,
				Start:      loc[0],
				End:        loc[1],
				Confidence: defaultScore,
				Context:    contextAround(text, loc[0], loc[1]),
			})
		}
	}
	return entities
}

// contextAround returns the text surrounding [start,end) clipped to bounds.
func contextAround(text string, start, end int) string {
	from := start - contextWindow
	if from < 0 {
		from = 0
	}
	to := end + contextWindow
	if to > len(text) {
		to = len(text)
	}
	return strings.TrimSpace(text[from:to])
}

// ExtractParties applies capitalized-name and suffixed-organization
// heuristics, keeping at most five matches per pattern. A match containing a
// corporate suffix is an organization, anything else a person.
func (e *Extractor) ExtractParties(text string) []models.Party {
	var parties []models.Party
	seen := make(map[string]bool)

	for _, p := range partyPatterns {
		matches := p.FindAllStringIndex(text, -1)
		kept := 0
		for _, loc := range matches {
			if kept >= maxPerPattern {
				break
			}
			name := strings.TrimSpace(text[loc[0]:loc[1]])
			key := strings.ToLower(name)
			if seen[key] {
				continue
			}
			seen[key] = true
			kept++
			parties = append(parties, models.Party{
				Name:    name,
				Type:    partyType(name),
				Context: contextAround(text, loc[0], loc[1]),
			})
		}
	}
	return parties
}

func partyType(name string) string {
	for _, suffix := range corporateSuffixes {
		if strings.Contains(name, suffix) {
			return "organization"
		}
	}
	return "person"
}

// ExtractObligations matches modal-verb clauses up to the next sentence
// terminator, keeping at most five per pattern.
func (e *Extractor) ExtractObligations(text string) []models.Obligation {
	var obligations []models.Obligation
	seen := make(map[string]bool)

	for _, p := range obligationPatterns {
		matches := p.FindAllStringIndex(text, -1)
		kept := 0
		for _, loc := range matches {
			if kept >= maxPerPattern {
				break
			}
			clause := strings.TrimSpace(text[loc[0]:loc[1]])
			key := strings.ToLower(clause)
			if clause == "" || seen[key] {
				continue
			}
			seen[key] = true
			kept++
			obligations = append(obligations, models.Obligation{
				Text:    clause,
				Context: contextAround(text, loc[0], loc[1]),
			})
		}
	}
	return obligations
}

// ExtractDeadlines finds date and deadline phrases with their surrounding
// clause.
func (e *Extractor) ExtractDeadlines(text string) []models.Deadline {
	var deadlines []models.Deadline
	seen := make(map[string]bool)

	for _, p := range deadlinePatterns {
		for _, m := range p.FindAllStringSubmatchIndex(text, -1) {
			full := strings.TrimSpace(text[m[0]:m[1]])
			phrase := full
			if len(m) >= 4 && m[2] >= 0 {
				phrase = strings.TrimSpace(text[m[2]:m[3]])
			}
			key := strings.ToLower(phrase)
			if phrase == "" || seen[key] {
				continue
			}
			seen[key] = true
			deadlines = append(deadlines, models.Deadline{
				Text:       phrase,
				FullClause: full,
				Type:       "deadline",
				Context:    contextAround(text, m[0], m[1]),
			})
		}
	}
	return deadlines
}

// Analyze runs the full entity pass: all families plus the derived party,
// obligation and deadline scans.
func (e *Extractor) Analyze(text string) models.EntitySet {
	return models.EntitySet{
		Entities:          e.Extract(text),
		KeyParties:        e.ExtractParties(text),
		Obligations:       e.ExtractObligations(text),
		DatesAndDeadlines: e.ExtractDeadlines(text),
	}
}
