package phrasebook

import (
	"strings"
	"testing"
)

func TestLoadEmbeddedTables(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, lang := range []string{"hi", "bn", "te", "mr", "ta", "ur", "gu", "kn", "ml"} {
		if !b.Supports(lang) {
			t.Errorf("expected support for %q", lang)
		}
	}
	if b.Supports("fr") {
		t.Error("french must not be supported")
	}
}

func TestTranslateExactPhrase(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got, ok := b.Translate("Legal document", "hi")
	if !ok {
		t.Fatal("expected a translation")
	}
	if got != "कानूनी दस्तावेज़" {
		t.Errorf("got %q", got)
	}
}

func TestTranslatePartialSubstitution(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got, ok := b.Translate("Summary of the case", "hi")
	if !ok {
		t.Fatal("expected a substituted translation")
	}
	if got == "Summary of the case" {
		t.Error("no substitution happened")
	}
	if !strings.Contains(got, "of the case") {
		t.Errorf("unknown words must survive substitution, got %q", got)
	}
}

func TestTranslateNoKnownPhrases(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got, ok := b.Translate("entirely untranslatable sentence", "hi"); ok {
		t.Errorf("expected no translation, got %q", got)
	}
}

func TestTranslateAnalysisBodyAppliesSections(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	body := "This document appears to be a legal contract. Here's a detailed analysis:\n\n1. Contract Structure and Validity:\n   - terms follow.\n\nDISCLAIMER: This analysis is provided for informational purposes only and should not be construed as legal advice. Please consult with a qualified legal professional for advice specific to your situation."

	got, ok := b.Translate(body, "hi")
	if !ok {
		t.Fatal("expected analysis translation")
	}
	if strings.Contains(got, "This document appears to be a legal contract") {
		t.Error("opening phrase was not substituted")
	}
	if strings.Contains(got, "Contract Structure and Validity:") {
		t.Error("section heading was not substituted")
	}
	if strings.Contains(got, "DISCLAIMER:") {
		t.Error("disclaimer heading was not substituted")
	}
	if !strings.Contains(got, "terms follow") {
		t.Error("untranslated body text must be preserved")
	}
}
