// Package phrasebook is the offline translation fallback. It carries a
// curated table of English legal phrases and their translations for the
// supported Indian languages, embedded at build time, and translates by
// ordered substitution rather than by model inference.
package phrasebook

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed phrases.yaml
var rawPhrases []byte

// Markers that identify a full contract-analysis body. Those get the
// section headings substituted in addition to the basic phrases.
const (
	contractMarker = "This document appears to be a legal contract"
	analysisMarker = "Here's a detailed analysis"
)

type pair struct {
	Src string `yaml:"src"`
	Dst string `yaml:"dst"`
}

type langTable struct {
	Phrases  []pair `yaml:"phrases"`
	Sections []pair `yaml:"sections"`
}

type phrasesFile struct {
	Languages map[string]langTable `yaml:"languages"`
}

// Book implements ports.PhraseTranslator over the embedded tables.
type Book struct {
	tables map[string]langTable
}

// Load parses and validates the embedded tables. Substitution order
// within a table is significant, so duplicates are a packaging error.
func Load() (*Book, error) {
	var f phrasesFile
	if err := yaml.Unmarshal(rawPhrases, &f); err != nil {
		return nil, fmt.Errorf("phrasebook: parse embedded tables: %w", err)
	}
	if len(f.Languages) == 0 {
		return nil, fmt.Errorf("phrasebook: embedded tables are empty")
	}
	for lang, table := range f.Languages {
		if err := validatePairs(lang, "phrases", table.Phrases); err != nil {
			return nil, err
		}
		if err := validatePairs(lang, "sections", table.Sections); err != nil {
			return nil, err
		}
	}
	return &Book{tables: f.Languages}, nil
}

func validatePairs(lang, kind string, pairs []pair) error {
	seen := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		if p.Src == "" || p.Dst == "" {
			return fmt.Errorf("phrasebook: %s/%s has an empty entry", lang, kind)
		}
		if _, dup := seen[p.Src]; dup {
			return fmt.Errorf("phrasebook: %s/%s has duplicate source %q", lang, kind, p.Src)
		}
		seen[p.Src] = struct{}{}
	}
	return nil
}

// Supports reports whether the book has phrase entries for targetLang.
func (b *Book) Supports(targetLang string) bool {
	table, ok := b.tables[targetLang]
	return ok && len(table.Phrases) > 0
}

// Translate renders text into targetLang using the phrase tables.
//
// A full analysis body (recognised by its fixed opening sentences) gets
// every known phrase and section heading substituted. Any other text is
// first tried as an exact phrase match, then as a partial substitution;
// the second return is false when no entry applied at all.
func (b *Book) Translate(text, targetLang string) (string, bool) {
	table, ok := b.tables[targetLang]
	if !ok || len(table.Phrases) == 0 {
		return "", false
	}

	if strings.Contains(text, contractMarker) && strings.Contains(text, analysisMarker) {
		out := text
		for _, p := range table.Phrases {
			out = strings.ReplaceAll(out, p.Src, p.Dst)
		}
		for _, p := range table.Sections {
			out = strings.ReplaceAll(out, p.Src, p.Dst)
		}
		return out, true
	}

	for _, p := range table.Phrases {
		if p.Src == text {
			return p.Dst, true
		}
	}

	out := text
	for _, p := range table.Phrases {
		out = strings.ReplaceAll(out, p.Src, p.Dst)
	}
	if out == text {
		return "", false
	}
	return out, true
}

// Languages lists the language codes the book carries, for diagnostics.
func (b *Book) Languages() []string {
	langs := make([]string, 0, len(b.tables))
	for lang := range b.tables {
		langs = append(langs, lang)
	}
	return langs
}
