// Package analysis renders the human-readable analysis body for a
// classified document: a per-type template, a numbered list of
// applicable statutes, and a closing disclaimer.
package analysis

import (
	"fmt"
	"strings"

	"github.com/kanoonsathi/legal-ai-backend/internal/core/domain"
	"github.com/kanoonsathi/legal-ai-backend/internal/core/ports"
)

const disclaimer = "\n\nDISCLAIMER: This analysis is provided for informational purposes only and should not be construed as legal advice. Please consult with a qualified legal professional for advice specific to your situation."

// Composer implements ports.AnalysisComposer.
type Composer struct {
	laws         ports.LawSelector
	jurisdiction string
}

func NewComposer(laws ports.LawSelector, jurisdiction string) *Composer {
	return &Composer{laws: laws, jurisdiction: jurisdiction}
}

func (c *Composer) Compose(docType domain.DocumentType, text string) string {
	var b strings.Builder

	body, ok := templates[docType]
	if !ok {
		body = genericTemplate
	}
	b.WriteString(body)

	if laws := c.laws.SelectLaws(docType, c.jurisdiction); len(laws) > 0 {
		b.WriteString("\n\nApplicable legal frameworks that may be relevant:\n")
		for i, law := range laws {
			fmt.Fprintf(&b, "%d. %s\n", i+1, law)
		}
	}

	b.WriteString(disclaimer)
	return b.String()
}
