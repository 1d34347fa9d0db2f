package simplify

import "regexp"

type rule struct {
	pattern *regexp.Regexp
	replace string
}

// substitutionRules maps legal jargon to plain language. Order matters:
// later rules see the output of earlier ones.
var substitutionRules = []rule{
	// Common legal terms
	{regexp.MustCompile(`(?i)\bheretofore\b`), "before this"},
	{regexp.MustCompile(`(?i)\bhereinafter\b`), "from now on"},
	{regexp.MustCompile(`(?i)\bwhereas\b`), "since"},
	{regexp.MustCompile(`(?i)\btherefore\b`), "so"},
	{regexp.MustCompile(`(?i)\bnotwithstanding\b`), "despite"},
	{regexp.MustCompile(`(?i)\bpursuant to\b`), "according to"},
	{regexp.MustCompile(`(?i)\bin consideration of\b`), "in exchange for"},
	{regexp.MustCompile(`(?i)\bshall\b`), "will"},
	{regexp.MustCompile(`(?i)\bmay not\b`), "cannot"},
	{regexp.MustCompile(`(?i)\bprovided that\b`), "if"},
	{regexp.MustCompile(`(?i)\bsubject to\b`), "depending on"},

	// Complex phrases
	{regexp.MustCompile(`(?i)\bin the event that\b`), "if"},
	{regexp.MustCompile(`(?i)\bfor the purpose of\b`), "to"},
	{regexp.MustCompile(`(?i)\bwith respect to\b`), "about"},
	{regexp.MustCompile(`(?i)\bin accordance with\b`), "following"},
	{regexp.MustCompile(`(?i)\bprior to\b`), "before"},
	{regexp.MustCompile(`(?i)\bsubsequent to\b`), "after"},
	{regexp.MustCompile(`(?i)\bin lieu of\b`), "instead of"},
	{regexp.MustCompile(`(?i)\bby virtue of\b`), "because of"},

	// Redundant pairs
	{regexp.MustCompile(`(?i)\bnull and void\b`), "invalid"},
	{regexp.MustCompile(`(?i)\beach and every\b`), "all"},
	{regexp.MustCompile(`(?i)\bfull and complete\b`), "complete"},
	{regexp.MustCompile(`(?i)\bfinal and binding\b`), "final"},
	{regexp.MustCompile(`(?i)\bterms and conditions\b`), "terms"},

	// Time references
	{regexp.MustCompile(`(?i)\bforthwith\b`), "immediately"},
	{regexp.MustCompile(`(?i)\bhenceforth\b`), "from now on"},
}

// structureRules simplify sentence structure; these run after the word
// substitutions and may use capture groups.
var structureRules = []rule{
	{regexp.MustCompile(`(?i)\bthe said\b`), "the"},
	{regexp.MustCompile(`(?i)\bsuch\s+(\w+)\s+as\s+aforesaid\b`), "the $1"},
	{regexp.MustCompile(`(?i)\baforesaid\b`), "mentioned"},
	{regexp.MustCompile(`(?i)\bis hereby\s+(\w+ed)\b`), "is $1"},
	{regexp.MustCompile(`(?i)\bwill be deemed to be\b`), "is considered"},
	{regexp.MustCompile(`(?i)\bwill be construed as\b`), "means"},
}

// Summary cascade: the first matching category wins, independent of how
// many times its keywords appear.
type summaryRule struct {
	keywords []string
	summary  string
}

var summaryCascade = []summaryRule{
	{[]string{"payment", "pay", "$"}, "This clause deals with payment terms and amounts."},
	{[]string{"termination", "terminate"}, "This clause explains how the agreement can be ended."},
	{[]string{"confidential", "non-disclosure"}, "This clause requires keeping information secret."},
	{[]string{"liability", "responsible"}, "This clause defines who is responsible for what."},
	{[]string{"intellectual property", "copyright"}, "This clause deals with ownership of ideas and creations."},
	{[]string{"dispute", "arbitration"}, "This clause explains how disagreements will be resolved."},
	{[]string{"force majeure", "act of god"}, "This clause covers situations beyond anyone's control."},
}

const genericSummary = "This clause contains important legal terms and conditions."

// Key point scans.
var (
	moneyRE    = regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?`)
	durationRE = regexp.MustCompile(`(?i)\b\d+\s+(?:days?|weeks?|months?|years?)\b`)
	percentRE  = regexp.MustCompile(`\d+(?:\.\d+)?%`)
)

var obligationWords = []string{"must", "shall", "will", "required", "obligated"}

var conditionWords = []string{"if", "unless", "provided", "subject to", "in case"}
