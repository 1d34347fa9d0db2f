package entity

import "regexp"

// Family names used as keys in extraction results.
const (
	FamilyDates     = "dates"
	FamilyMonetary  = "monetary_values"
	FamilyParties   = "parties"
	FamilyAddresses = "addresses"
	FamilyPhones    = "phone_numbers"
	FamilyEmails    = "email_addresses"
	FamilyLegal     = "legal_terms"
	FamilyObligs    = "obligations"
	FamilyDurations = "durations"
	FamilyPercents  = "percentages"
)

type family struct {
	name     string
	patterns []*regexp.Regexp
}

// families lists every entity family with its regex set. Iteration order is
// stable so extraction output is deterministic.
var families = []family{
	{FamilyDates, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
		regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{2,4}\b`),
		regexp.MustCompile(`(?i)\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{2,4}\b`),
	}},
	{FamilyMonetary, []*regexp.Regexp{
		regexp.MustCompile(`\$[\d,]+(?:\.\d+)?`),
		regexp.MustCompile(`(?i)\b\d+\s*dollars?\b`),
		regexp.MustCompile(`(?i)\b\d+\s*USD\b`),
	}},
	{FamilyParties, []*regexp.Regexp{
		regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+\s*(?:Inc\.?|LLC|Corp\.?|Corporation|Company|Ltd\.?|Limited)?\b`),
		regexp.MustCompile(`\b(?:The\s+)?[A-Z][A-Za-z\s&]+(?:Inc\.?|LLC|Corp\.?|Corporation|Company|Ltd\.?|Limited)\b`),
	}},
	{FamilyAddresses, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b\d+\s+[A-Za-z\s]+(?:Street|St\.?|Avenue|Ave\.?|Road|Rd\.?|Boulevard|Blvd\.?|Drive|Dr\.?|Lane|Ln\.?|Way|Court|Ct\.?)\b`),
	}},
	{FamilyPhones, []*regexp.Regexp{
		regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.]?\d{4}\b`),
	}},
	{FamilyEmails, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
	}},
	{FamilyLegal, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:whereas|therefore|hereby|herein|hereof|hereunder|notwithstanding|pursuant|covenant|indemnify|liability|breach|termination|confidential|proprietary)\b`),
	}},
	{FamilyObligs, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:shall|must|will|agree to|required to|obligated to|responsible for)\b[^.]*`),
	}},
	{FamilyDurations, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b\d+\s*(?:days?|weeks?|months?|years?)\b`),
		regexp.MustCompile(`(?i)\b(?:one|two|three|four|five|six|seven|eight|nine|ten)\s+(?:days?|weeks?|months?|years?)\b`),
	}},
	{FamilyPercents, []*regexp.Regexp{
		regexp.MustCompile(`\d+(?:\.\d+)?%`),
	}},
}

// Party heuristics: organizations carry a corporate suffix, otherwise the
// match is treated as a person name.
var partyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Z][a-z]+ (?:Inc|LLC|Corp|Corporation|Company|Ltd)\.?\b`),
	regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`),
}

var corporateSuffixes = []string{"Inc", "LLC", "Corp", "Corporation", "Company", "Ltd"}

// Obligation clauses run from a modal verb to the next sentence terminator.
var obligationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)[^.]*(?:shall|must|will|required to|obligated to)[^.]*\.`),
	regexp.MustCompile(`(?i)[^.]*(?:agrees to|undertakes to)[^.]*\.`),
}

// Deadline phrases: explicit effective/expiry markers, relative periods and
// not-later-than constructions.
var deadlinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:effective|start|begin|commence|end|expire|terminate|due|deadline|by)\s+(?:date|on)?\s*:?\s*([^,\n]+)`),
	regexp.MustCompile(`(?i)(?:within|after|before)\s+(\d+\s*(?:days?|weeks?|months?|years?))`),
	regexp.MustCompile(`(?i)(?:no later than|not later than|by)\s+([^,\n]+)`),
}
