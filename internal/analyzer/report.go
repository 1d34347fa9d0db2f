package analyzer

import (
	"fmt"
	"strings"

	"github.com/plainterms/legal-analyzer/internal/classify"
	"github.com/plainterms/legal-analyzer/internal/entity"
	"github.com/plainterms/legal-analyzer/pkg/models"
)

const (
	maxFindings        = 5
	maxRecommendations = 5
	maxImportant       = 3
)

// typeRecommendations maps a predicted document type to review advice for
// that type. Types without an entry fall through to the general advice.
var typeRecommendations = map[string][]string{
	"nda": {
		"Review confidentiality scope and duration",
		"Ensure mutual obligations are clearly defined",
		"Verify return/destruction of confidential information clauses",
	},
	"employment_contract": {
		"Review compensation and benefits details",
		"Check termination and notice period clauses",
		"Verify non-compete and confidentiality provisions",
	},
	"service_agreement": {
		"Clarify scope of work and deliverables",
		"Review payment terms and schedule",
		"Check liability and indemnification clauses",
	},
	"lease_agreement": {
		"Verify rent amount and payment schedule",
		"Review security deposit and return conditions",
		"Check maintenance and repair responsibilities",
	},
}

func keyFindings(cls models.Classification, ents models.EntitySet) []string {
	findings := make([]string, 0, maxFindings)

	if cls.IsConfident {
		findings = append(findings, fmt.Sprintf("Document identified as %s", titleType(cls.PredictedType)))
	}
	if n := len(ents.KeyParties); n > 0 {
		findings = append(findings, fmt.Sprintf("Found %d key parties involved", n))
	}
	if n := len(ents.Obligations); n > 0 {
		findings = append(findings, fmt.Sprintf("Identified %d obligations or responsibilities", n))
	}
	if n := len(ents.DatesAndDeadlines); n > 0 {
		findings = append(findings, fmt.Sprintf("Found %d important dates or deadlines", n))
	}
	if n := len(ents.Entities[entity.FamilyMonetary]); n > 0 {
		findings = append(findings, fmt.Sprintf("Contains %d monetary references", n))
	}

	if len(findings) > maxFindings {
		findings = findings[:maxFindings]
	}
	return findings
}

func recommendations(cls models.Classification, ents models.EntitySet) []string {
	recs := make([]string, 0, maxRecommendations)
	recs = append(recs, typeRecommendations[cls.PredictedType]...)

	if len(ents.DatesAndDeadlines) > 0 {
		recs = append(recs, "Pay attention to all dates and deadlines mentioned")
	}
	if len(ents.Obligations) > 0 {
		recs = append(recs, "Carefully review all obligations and responsibilities")
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func buildSummary(cls models.Classification, ents models.EntitySet, chars models.Characteristics) models.Summary {
	summary := models.Summary{
		DocumentType: cls.PredictedType,
		Confidence:   cls.Confidence,
		Complexity:   chars.Complexity,
		KeyFindings:  keyFindings(cls, ents),
	}

	important := make(map[string][]string)
	if names := partyNames(ents.KeyParties); len(names) > 0 {
		important["parties"] = names
	}
	if values := entityTexts(ents.Entities[entity.FamilyMonetary]); len(values) > 0 {
		important["monetary_values"] = values
	}
	if dates := deadlineTexts(ents.DatesAndDeadlines); len(dates) > 0 {
		important["important_dates"] = dates
	}
	if len(important) > 0 {
		summary.ImportantEntities = important
	}
	return summary
}

func partyNames(parties []models.Party) []string {
	names := make([]string, 0, maxImportant)
	for _, p := range parties {
		if len(names) == maxImportant {
			break
		}
		names = append(names, p.Name)
	}
	return names
}

func entityTexts(entities []models.Entity) []string {
	texts := make([]string, 0, maxImportant)
	for _, e := range entities {
		if len(texts) == maxImportant {
			break
		}
		texts = append(texts, e.Text)
	}
	return texts
}

func deadlineTexts(deadlines []models.Deadline) []string {
	texts := make([]string, 0, maxImportant)
	for _, d := range deadlines {
		if len(texts) == maxImportant {
			break
		}
		texts = append(texts, d.Text)
	}
	return texts
}

// titleType renders a snake_case type name for display, e.g.
// "employment_contract" becomes "Employment Contract".
func titleType(docType string) string {
	if docType == classify.Unknown {
		return "Unknown"
	}
	words := strings.Split(docType, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		if w == "nda" {
			words[i] = "NDA"
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
