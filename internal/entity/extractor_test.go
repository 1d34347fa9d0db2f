package entity

import (
	"strings"
	"testing"
)

const sampleNDA = "This Non-Disclosure Agreement is between Acme Inc. and Beta LLC. " +
	"The parties shall keep information confidential for 2 years. " +
	"Payment of $10,000 is due within 30 days. Contact legal@acme.com or 555-123-4567."

func TestExtractMonetaryValues(t *testing.T) {
	e := New()

	entities := e.Extract(sampleNDA)

	money := entities[FamilyMonetary]
	if len(money) != 1 {
		t.Fatalf("expected 1 monetary value, got %d: %v", len(money), money)
	}
	if money[0].Text != "$10,000" {
		t.Errorf("expected $10,000, got %q", money[0].Text)
	}
}

func TestExtractDurations(t *testing.T) {
	e := New()

	entities := e.Extract(sampleNDA)

	var texts []string
	for _, d := range entities[FamilyDurations] {
		texts = append(texts, d.Text)
	}
	joined := strings.Join(texts, "|")
	if !strings.Contains(joined, "2 years") {
		t.Errorf("expected duration '2 years' in %v", texts)
	}
	if !strings.Contains(joined, "30 days") {
		t.Errorf("expected duration '30 days' in %v", texts)
	}
}

func TestExtractEmailAndPhone(t *testing.T) {
	e := New()

	entities := e.Extract(sampleNDA)

	if len(entities[FamilyEmails]) != 1 || entities[FamilyEmails][0].Text != "legal@acme.com" {
		t.Errorf("unexpected emails: %v", entities[FamilyEmails])
	}
	if len(entities[FamilyPhones]) != 1 || entities[FamilyPhones][0].Text != "555-123-4567" {
		t.Errorf("unexpected phones: %v", entities[FamilyPhones])
	}
}

func TestExtractDeduplicatesCaseInsensitive(t *testing.T) {
	e := New()

	entities := e.Extract("Notice WHEREAS the parties agree, whereas conditions hold, Whereas...")

	for famName, list := range entities {
		seen := make(map[string]bool)
		for _, ent := range list {
			key := strings.ToLower(ent.Text)
			if seen[key] {
				t.Errorf("family %s has duplicate entity %q", famName, ent.Text)
			}
			seen[key] = true
		}
	}
	if len(entities[FamilyLegal]) != 1 {
		t.Errorf("expected 1 deduplicated legal term, got %v", entities[FamilyLegal])
	}
}

func TestExtractFirstOccurrenceKeepsSpan(t *testing.T) {
	e := New()

	text := "Pay $500 now. Later pay $500 again."
	entities := e.Extract(text)

	money := entities[FamilyMonetary]
	if len(money) != 1 {
		t.Fatalf("expected 1 deduplicated amount, got %d", len(money))
	}
	if money[0].Start != strings.Index(text, "$500") {
		t.Errorf("expected first occurrence span, got start %d", money[0].Start)
	}
}

func TestContextClippedToBounds(t *testing.T) {
	e := New()

	text := "$100 due"
	entities := e.Extract(text)

	money := entities[FamilyMonetary]
	if len(money) != 1 {
		t.Fatalf("expected 1 monetary value, got %d", len(money))
	}
	if money[0].Context != text {
		t.Errorf("expected clipped context %q, got %q", text, money[0].Context)
	}
}

func TestExtractParties(t *testing.T) {
	e := New()

	parties := e.ExtractParties("Agreement between Acme Inc. and John Smith regarding services.")

	byName := make(map[string]string)
	for _, p := range parties {
		byName[p.Name] = p.Type
	}

	foundOrg := false
	for name, typ := range byName {
		if strings.Contains(name, "Acme") && typ == "organization" {
			foundOrg = true
		}
	}
	if !foundOrg {
		t.Errorf("expected Acme classified as organization, got %v", byName)
	}
	if typ, ok := byName["John Smith"]; !ok || typ != "person" {
		t.Errorf("expected John Smith classified as person, got %v", byName)
	}
}

func TestExtractPartiesLimit(t *testing.T) {
	e := New()

	text := "John Smith and Mary Jones and Peter Brown and Alice Green and " +
		"Bob White and Carol Black and David Gray signed the agreement."

	parties := e.ExtractParties(text)

	if len(parties) != 5 {
		t.Errorf("expected 5 parties (per-pattern cap), got %d: %v", len(parties), parties)
	}
}

func TestExtractObligations(t *testing.T) {
	e := New()

	obligations := e.ExtractObligations(
		"The Receiving Party shall return all materials upon request. " +
			"The Vendor agrees to deliver the goods by Friday.")

	if len(obligations) != 2 {
		t.Fatalf("expected 2 obligations, got %d: %v", len(obligations), obligations)
	}
	if !strings.Contains(obligations[0].Text, "shall return all materials") {
		t.Errorf("unexpected obligation text: %q", obligations[0].Text)
	}
	if !strings.HasSuffix(obligations[0].Text, ".") {
		t.Errorf("obligation should run to the sentence terminator: %q", obligations[0].Text)
	}
}

func TestExtractDeadlines(t *testing.T) {
	e := New()

	deadlines := e.ExtractDeadlines("The report is due within 30 days of signing.")

	found := false
	for _, d := range deadlines {
		if strings.Contains(d.Text, "30 days") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a 30 days deadline, got %v", deadlines)
	}
}

func TestExtractEmptyText(t *testing.T) {
	e := New()

	set := e.Analyze("")

	for fam, list := range set.Entities {
		if len(list) != 0 {
			t.Errorf("family %s not empty for empty input: %v", fam, list)
		}
	}
	if len(set.KeyParties) != 0 || len(set.Obligations) != 0 || len(set.DatesAndDeadlines) != 0 {
		t.Error("expected empty derived extractions for empty input")
	}
}
