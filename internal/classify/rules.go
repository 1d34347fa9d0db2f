package classify

import "regexp"

// Rule describes one document type: keywords scored by substring match,
// patterns scored by regex match, and a weight applied to the total.
type Rule struct {
	Type     string
	Keywords []string
	Patterns []*regexp.Regexp
	Weight   float64
}

// defaultRules returns the built-in document type registry. Declaration
// order matters: when two types score identically the earlier entry wins.
func defaultRules() []Rule {
	return []Rule{
		{
			Type: "nda",
			Keywords: []string{
				"non-disclosure", "confidentiality", "confidential information",
				"proprietary information", "trade secrets", "non-disclosure agreement",
				"confidentiality agreement", "secrecy agreement",
			},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`non[- ]disclosure`),
				regexp.MustCompile(`confidential(?:ity)?`),
				regexp.MustCompile(`proprietary\s+information`),
				regexp.MustCompile(`trade\s+secrets?`),
			},
			Weight: 1.0,
		},
		{
			Type: "employment_contract",
			Keywords: []string{
				"employment", "employee", "employer", "job", "position",
				"salary", "wages", "benefits", "termination", "resignation",
				"work schedule", "duties", "responsibilities",
			},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`employment\s+(?:agreement|contract)`),
				regexp.MustCompile(`employee\s+handbook`),
				regexp.MustCompile(`job\s+description`),
				regexp.MustCompile(`salary\s+and\s+benefits`),
			},
			Weight: 1.0,
		},
		{
			Type: "service_agreement",
			Keywords: []string{
				"service", "services", "provider", "client", "customer",
				"deliverables", "scope of work", "statement of work",
				"professional services", "consulting",
			},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`service\s+agreement`),
				regexp.MustCompile(`professional\s+services`),
				regexp.MustCompile(`scope\s+of\s+work`),
				regexp.MustCompile(`statement\s+of\s+work`),
			},
			Weight: 1.0,
		},
		{
			Type: "lease_agreement",
			Keywords: []string{
				"lease", "rent", "tenant", "landlord", "property",
				"premises", "rental", "lease term", "security deposit",
				"monthly rent",
			},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`lease\s+agreement`),
				regexp.MustCompile(`rental\s+agreement`),
				regexp.MustCompile(`landlord\s+and\s+tenant`),
				regexp.MustCompile(`monthly\s+rent`),
			},
			Weight: 1.0,
		},
		{
			Type: "purchase_agreement",
			Keywords: []string{
				"purchase", "sale", "buyer", "seller", "goods",
				"merchandise", "purchase price", "delivery",
				"payment terms", "invoice",
			},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`purchase\s+agreement`),
				regexp.MustCompile(`sale\s+agreement`),
				regexp.MustCompile(`buyer\s+and\s+seller`),
				regexp.MustCompile(`purchase\s+price`),
			},
			Weight: 1.0,
		},
		{
			Type: "partnership_agreement",
			Keywords: []string{
				"partnership", "partners", "joint venture", "collaboration",
				"profit sharing", "equity", "capital contribution",
				"management", "dissolution",
			},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`partnership\s+agreement`),
				regexp.MustCompile(`joint\s+venture`),
				regexp.MustCompile(`profit\s+sharing`),
				regexp.MustCompile(`capital\s+contribution`),
			},
			Weight: 1.0,
		},
		{
			Type: "license_agreement",
			Keywords: []string{
				"license", "licensing", "licensor", "licensee",
				"intellectual property", "copyright", "trademark",
				"patent", "royalty", "usage rights",
			},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`license\s+agreement`),
				regexp.MustCompile(`licensing\s+agreement`),
				regexp.MustCompile(`intellectual\s+property`),
				regexp.MustCompile(`usage\s+rights`),
			},
			Weight: 1.0,
		},
		{
			Type: "loan_agreement",
			Keywords: []string{
				"loan", "lender", "borrower", "principal", "interest",
				"repayment", "default", "collateral", "credit",
				"promissory note",
			},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`loan\s+agreement`),
				regexp.MustCompile(`promissory\s+note`),
				regexp.MustCompile(`lender\s+and\s+borrower`),
				regexp.MustCompile(`interest\s+rate`),
			},
			Weight: 1.0,
		},
	}
}
