package entities

import (
	"regexp"
	"strings"

	"github.com/kanoonsathi/legal-ai-backend/internal/core/domain"
)

// MaxEntities bounds the result list regardless of how many patterns hit.
const MaxEntities = 20

type entityPattern struct {
	category string
	re       *regexp.Regexp
}

// genericPatterns apply to every document type. Order matters: results
// keep pattern order first, match order second.
var genericPatterns = []entityPattern{
	{"date", regexp.MustCompile(`\b(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\s+\d{1,2},\s+\d{4}\b|\b\d{1,2}/\d{1,2}/\d{2,4}\b|\b\d{1,2}-\d{1,2}-\d{2,4}\b`)},
	{"money", regexp.MustCompile(`\$\s*\d+(?:,\d+)*(?:\.\d+)?|\b\d+(?:,\d+)*(?:\.\d+)?\s*(?:dollars|USD|Rs\.?|INR|£|€)`)},
	{"person", regexp.MustCompile(`\b(?:[A-Z][a-z]+ [A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b`)},
	{"organization", regexp.MustCompile(`\b(?:[A-Z][a-z]*\s*(?:&|and)?\s*)+(?:L\.?L\.?C\.?|Inc\.?|Ltd\.?|Corporation|Corp\.?|Company|Co\.?)\b`)},
	{"address", regexp.MustCompile(`\b\d+\s+[A-Za-z0-9\s,.]+\b(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Court|Ct|Plaza|Plz|Terrace|Ter|Place|Pl)\b`)},
	{"phone", regexp.MustCompile(`\b(?:\+\d{1,3}\s?)?(?:\(\d{3}\)|\d{3})[-.\s]?\d{3}[-.\s]?\d{4}\b`)},
	{"email", regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)},
	{"url", regexp.MustCompile(`\bhttps?://(?:www\.)?[-a-zA-Z0-9@:%._\+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b(?:[-a-zA-Z0-9()@:%_\+.~#?&//=]*)`)},
	{"clause", regexp.MustCompile(`\b(?:Section|Clause|Article|Paragraph)\s+\d+(?:\.\d+)*`)},
	{"percentage", regexp.MustCompile(`\b\d+(?:\.\d+)?\s*%`)},
}

var contractPatterns = []entityPattern{
	{"party", regexp.MustCompile(`\bparty of the (?:first|second) part\b|\bthe (?:seller|buyer|lessor|lessee|vendor|purchaser|landlord|tenant|licensor|licensee)\b`)},
	{"effective_date", regexp.MustCompile(`\beffective date\b|\bcommencement date\b`)},
	{"termination", regexp.MustCompile(`\btermination\b|\bexpiration\b|\bcancellation\b`)},
	{"governing_law", regexp.MustCompile(`\bgoverning law\b|\bjurisdiction\b|\bvenue\b`)},
	{"indemnity", regexp.MustCompile(`\bindemnity\b|\bindemnification\b|\bhold harmless\b`)},
	{"warranty", regexp.MustCompile(`\bwarranty\b|\bguarantee\b|\brepresent and warrant\b`)},
}

var judgmentPatterns = []entityPattern{
	{"citation", regexp.MustCompile(`\b\d+\s+[A-Za-z]+\s+\d+\b|\b\[\d{4}\]\s+\w+\s+\d+\b`)},
	{"court", regexp.MustCompile(`\b(?:Supreme Court|High Court|District Court|Federal Court|Appellate Court|Court of Appeals)\b`)},
	{"judge", regexp.MustCompile(`\bJustice\s+[A-Z][a-z]+\b|\bJudge\s+[A-Z][a-z]+\b|\bHon'?ble\s+[A-Z][a-z]+\b`)},
	{"statute", regexp.MustCompile(`\b(?:Act|Code|Statute|Law|Regulation)\s+of\s+\d{4}\b`)},
}

// PatternExtractor runs the entity pattern table against document text.
// Stateless, safe for concurrent use.
type PatternExtractor struct{}

func New() *PatternExtractor {
	return &PatternExtractor{}
}

// Extract applies the generic patterns plus the document-type-specific
// augmentation, flattening matches in pattern-table order and truncating
// the total to MaxEntities.
func (e *PatternExtractor) Extract(text string, docType domain.DocumentType) []domain.EntityMatch {
	table := genericPatterns
	switch docType {
	case domain.TypeContract:
		table = append(append([]entityPattern{}, table...), contractPatterns...)
	case domain.TypeJudgment:
		table = append(append([]entityPattern{}, table...), judgmentPatterns...)
	}

	matches := []domain.EntityMatch{}
	for _, p := range table {
		for _, m := range p.re.FindAllString(text, -1) {
			if m == "" {
				continue
			}
			matches = append(matches, domain.EntityMatch{
				Text: m,
				Type: strings.ToUpper(p.category),
			})
			if len(matches) == MaxEntities {
				return matches
			}
		}
	}
	return matches
}
