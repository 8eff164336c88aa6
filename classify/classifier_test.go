package classify

import (
	"reflect"
	"strings"
	"testing"
)

func TestClassifyCleanText(t *testing.T) {
	c := NewDefault()
	findings := c.Classify("the quick brown fox jumps over the lazy dog")
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %v", findings)
	}
}

func TestClassifyEmptyText(t *testing.T) {
	c := NewDefault()
	if findings := c.Classify(""); len(findings) != 0 {
		t.Fatalf("expected empty findings for empty text, got %v", findings)
	}
}

func TestClassifyWholeWordKeyword(t *testing.T) {
	c := NewDefault()

	findings := c.Classify("this document is confidential material")
	evidence, ok := findings[Confidential]
	if !ok {
		t.Fatalf("expected confidential category, got %v", findings)
	}
	found := false
	for _, e := range evidence {
		if e == "confidential" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected keyword evidence 'confidential', got %v", evidence)
	}

	// Substring inside a longer word must not trigger.
	findings = c.Classify("this is utterly unconfidential text")
	if _, ok := findings[Confidential]; ok {
		t.Fatalf("substring match must not trigger whole-word keyword: %v", findings)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	c := NewDefault()
	findings := c.Classify("CONFIDENTIAL briefing for the board")
	if _, ok := findings[Confidential]; !ok {
		t.Fatalf("expected case-insensitive keyword match, got %v", findings)
	}
}

func TestClassifySSNPattern(t *testing.T) {
	c := NewDefault()
	findings := c.Classify("SSN 123-45-6789 on record")
	evidence, ok := findings[PII]
	if !ok {
		t.Fatalf("expected pii category, got %v", findings)
	}
	found := false
	for _, e := range evidence {
		if e == "ssn" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected pattern evidence 'ssn', got %v", evidence)
	}
}

func TestClassifyEmailPattern(t *testing.T) {
	c := NewDefault()
	findings := c.Classify("reach me at jane.doe@example.com please")
	evidence, ok := findings[PII]
	if !ok {
		t.Fatalf("expected pii category, got %v", findings)
	}
	found := false
	for _, e := range evidence {
		if e == "email" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected pattern evidence 'email', got %v", evidence)
	}
}

func TestClassifyPhoneRequiresContext(t *testing.T) {
	c := NewDefault()

	findings := c.Classify("Phone: 215-555-2368")
	if evidence := findings[PII]; !containsEvidence(evidence, "phone") {
		t.Fatalf("expected phone pattern with contextual prefix, got %v", findings)
	}

	findings = c.Classify("order 215-555-2368 shipped")
	if evidence := findings[PII]; containsEvidence(evidence, "phone") {
		t.Fatalf("phone pattern without context must not trigger: %v", findings)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewDefault()
	text := "Confidential: employee salary data, SSN 123-45-6789, contact legal counsel"
	first := c.Classify(text)
	for i := 0; i < 5; i++ {
		if got := c.Classify(text); !reflect.DeepEqual(first, got) {
			t.Fatalf("classification not deterministic: %v vs %v", first, got)
		}
	}
}

func TestClassifyLargeInputUsesPrefilter(t *testing.T) {
	c := NewDefault()
	filler := strings.Repeat("lorem ipsum dolor sit amet ", 400)
	text := filler + " salary review attached"
	findings := c.Classify(text)
	if evidence := findings[Financial]; !containsEvidence(evidence, "salary") {
		t.Fatalf("expected salary keyword in large input, got %v", findings)
	}
}

func TestClassifyMultipleCategories(t *testing.T) {
	c := NewDefault()
	findings := c.Classify("Confidential invoice for patient records under Contract No. AB-123")
	for _, cat := range []Category{Confidential, Financial, PII, Legal} {
		if _, ok := findings[cat]; !ok {
			t.Fatalf("expected category %s, got %v", cat, findings)
		}
	}
}

func TestClassifyCustomRules(t *testing.T) {
	keywords := map[Category][]string{Financial: {"ledger"}}
	pattern, err := CompilePattern("badge_id", PII, `EMP-\d{5}`)
	if err != nil {
		t.Fatalf("compile pattern: %v", err)
	}
	c := New(keywords, []Pattern{pattern})

	findings := c.Classify("ledger entry for EMP-40221")
	if !containsEvidence(findings[Financial], "ledger") {
		t.Fatalf("expected custom keyword, got %v", findings)
	}
	if !containsEvidence(findings[PII], "badge_id") {
		t.Fatalf("expected custom pattern evidence, got %v", findings)
	}
}

func TestCompilePatternInvalid(t *testing.T) {
	if _, err := CompilePattern("bad", PII, `([`); err == nil {
		t.Fatal("expected error for invalid regex")
	}
}

func TestFindingsCategoryList(t *testing.T) {
	f := Findings{Legal: {"contract"}, PII: {"ssn"}}
	got := f.CategoryList()
	if len(got) != 2 || got[0] != Legal || got[1] != PII {
		t.Fatalf("unexpected category list: %v", got)
	}
}

func containsEvidence(evidence []string, target string) bool {
	for _, e := range evidence {
		if e == target {
			return true
		}
	}
	return false
}
