package classify

import (
	"regexp"
	"strings"

	"github.com/plainterms/legal-analyzer/pkg/models"
)

var (
	mutualRE     = regexp.MustCompile(`(?i)mutual(?:ly)?`)
	durationRE   = regexp.MustCompile(`(?i)(?:for a period of|duration of|term of)\s+([^,\n]+)`)
	fullTimeRE   = regexp.MustCompile(`(?i)full[- ]time`)
	partTimeRE   = regexp.MustCompile(`(?i)part[- ]time`)
	contractorRE = regexp.MustCompile(`(?i)contract(?:or|ual)?`)
	consultingRE = regexp.MustCompile(`(?i)consulting`)
	profServRE   = regexp.MustCompile(`(?i)professional\s+services`)
	residentRE   = regexp.MustCompile(`(?i)residential`)
	commercialRE = regexp.MustCompile(`(?i)commercial`)
)

// keySectionPatterns maps a section label to the pattern that detects it.
var keySectionPatterns = []struct {
	label   string
	pattern *regexp.Regexp
}{
	{"Recitals", regexp.MustCompile(`(?i)\b(?:whereas|recitals?)\b`)},
	{"Definitions", regexp.MustCompile(`(?i)\b(?:definitions?)\b`)},
	{"Obligations", regexp.MustCompile(`(?i)\b(?:obligations?|duties)\b`)},
	{"Payment", regexp.MustCompile(`(?i)\b(?:payment|compensation)\b`)},
	{"Termination", regexp.MustCompile(`(?i)\b(?:termination|expiration)\b`)},
	{"Confidentiality", regexp.MustCompile(`(?i)\b(?:confidentiality|non-disclosure)\b`)},
	{"Liability", regexp.MustCompile(`(?i)\b(?:liability|indemnification)\b`)},
	{"Disputes", regexp.MustCompile(`(?i)\b(?:dispute|arbitration)\b`)},
}

// Characterize derives type-specific secondary findings for a classified
// document: NDA mutuality, employment type, service type, property type,
// plus document complexity and detected key sections.
func (c *Classifier) Characterize(text, docType string) models.Characteristics {
	ch := models.Characteristics{
		Detail:      map[string]string{},
		Complexity:  complexity(len(strings.Fields(text))),
		KeySections: keySections(text),
	}

	switch docType {
	case "nda":
		ch.Type = "Non-Disclosure Agreement"
		if mutualRE.MatchString(text) {
			ch.Detail["nda_type"] = "Mutual NDA"
		} else {
			ch.Detail["nda_type"] = "Unilateral NDA"
		}
		if m := durationRE.FindStringSubmatch(text); m != nil {
			ch.Detail["duration"] = strings.TrimSpace(m[1])
		}
	case "employment_contract":
		ch.Type = "Employment Contract"
		switch {
		case fullTimeRE.MatchString(text):
			ch.Detail["employment_type"] = "Full-time"
		case partTimeRE.MatchString(text):
			ch.Detail["employment_type"] = "Part-time"
		case contractorRE.MatchString(text):
			ch.Detail["employment_type"] = "Contract"
		}
	case "service_agreement":
		ch.Type = "Service Agreement"
		switch {
		case consultingRE.MatchString(text):
			ch.Detail["service_type"] = "Consulting"
		case profServRE.MatchString(text):
			ch.Detail["service_type"] = "Professional Services"
		}
	case "lease_agreement":
		ch.Type = "Lease Agreement"
		switch {
		case residentRE.MatchString(text):
			ch.Detail["property_type"] = "Residential"
		case commercialRE.MatchString(text):
			ch.Detail["property_type"] = "Commercial"
		}
	default:
		ch.Type = "General Contract"
	}

	return ch
}

func complexity(wordCount int) string {
	switch {
	case wordCount < 500:
		return "Low"
	case wordCount < 2000:
		return "Medium"
	default:
		return "High"
	}
}

func keySections(text string) []string {
	var sections []string
	for _, ks := range keySectionPatterns {
		if ks.pattern.MatchString(text) {
			sections = append(sections, ks.label)
		}
	}
	return sections
}
