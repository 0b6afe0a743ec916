package classifier

import (
	"strings"
	"testing"

	"github.com/kanoonsathi/legal-ai-backend/internal/core/domain"
)

func TestClassifyEmptyText(t *testing.T) {
	c := New()

	for _, text := range []string{"", "   ", "\n\t"} {
		got := c.Classify(text)
		if got.Type != domain.TypeUnknown {
			t.Fatalf("Classify(%q) type = %s, want unknown", text, got.Type)
		}
		if got.Confidence != 0.0 {
			t.Fatalf("Classify(%q) confidence = %v, want 0", text, got.Confidence)
		}
	}
}

func TestClassifyContractKeywords(t *testing.T) {
	c := New()

	text := "This agreement is made between the parties. The parties hereby agree to the terms and conditions of this contract."
	got := c.Classify(text)
	if got.Type != domain.TypeContract {
		t.Fatalf("type = %s, want contract", got.Type)
	}
	if got.Confidence <= 0 || got.Confidence > 1 {
		t.Fatalf("confidence = %v, want in (0, 1]", got.Confidence)
	}
}

func TestClassifyJudgmentKeywords(t *testing.T) {
	c := New()

	text := "The court delivered its judgment in the matter of the petitioner versus the respondent, and the judge issued a decree."
	got := c.Classify(text)
	if got.Type != domain.TypeJudgment {
		t.Fatalf("type = %s, want judgment", got.Type)
	}
}

func TestClassifyConfidenceClampedToOne(t *testing.T) {
	c := New()

	// Far more keyword hits than words/100: the raw score exceeds 1.
	text := strings.TrimSpace(strings.Repeat("contract agreement parties hereby ", 10))
	got := c.Classify(text)
	if got.Confidence != 1.0 {
		t.Fatalf("confidence = %v, want clamped to 1.0", got.Confidence)
	}
}

func TestClassifyNoMatchFallsToFirstType(t *testing.T) {
	c := New()

	got := c.Classify("banana orange apple grape")
	if got.Type != domain.TypeContract {
		t.Fatalf("type = %s, want first table entry (contract)", got.Type)
	}
	if got.Confidence != 0.0 {
		t.Fatalf("confidence = %v, want 0", got.Confidence)
	}
}
