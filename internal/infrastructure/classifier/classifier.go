package classifier

import (
	"regexp"
	"strings"

	"github.com/kanoonsathi/legal-ai-backend/internal/core/domain"
)

// typePattern pairs a document type with its keyword signature. Slice
// order is the tie-break order: the first type reaching the maximum
// score wins.
type typePattern struct {
	docType domain.DocumentType
	re      *regexp.Regexp
}

var typePatterns = []typePattern{
	{domain.TypeContract, regexp.MustCompile(`(?i)(agreement|contract|terms|conditions|parties|clause|hereby|agree|consideration)`)},
	{domain.TypeJudgment, regexp.MustCompile(`(?i)(judgment|court|ruling|judge|versus|petitioner|respondent|plaintiff|defendant|bench|justice|order|decree)`)},
	{domain.TypeLegislation, regexp.MustCompile(`(?i)(act|section|statute|law|regulation|provision|legislature|parliament|amendment|clause|bill)`)},
	{domain.TypeWill, regexp.MustCompile(`(?i)(testament|will|bequeath|estate|beneficiary|executor|probate|heir|inheritance|devise|legacy)`)},
	{domain.TypeAffidavit, regexp.MustCompile(`(?i)(affidavit|sworn|deponent|oath|affirm|verification|notary|attested)`)},
	{domain.TypeNotice, regexp.MustCompile(`(?i)(notice|hereby|inform|attention|pursuant|announce|adjourned|meeting)`)},
	{domain.TypeLegalOpinion, regexp.MustCompile(`(?i)(opinion|advice|counsel|consult|recommended|suggested|pursuant to)`)},
	{domain.TypeMOU, regexp.MustCompile(`(?i)(memorandum|understanding|mou|intent|non-binding)`)},
}

// PatternClassifier scores text by keyword match density per document
// type. It is stateless and safe for concurrent use.
type PatternClassifier struct{}

func New() *PatternClassifier {
	return &PatternClassifier{}
}

// Classify returns the best-scoring document type with a confidence in
// [0,1]. The score is matches per 100 words, clamped to 1.0. Empty or
// whitespace-only text classifies as unknown with zero confidence.
func (c *PatternClassifier) Classify(text string) domain.Classification {
	words := len(strings.Fields(text))
	if words == 0 {
		return domain.Classification{Type: domain.TypeUnknown, Confidence: 0.0}
	}

	best := domain.Classification{Type: domain.TypeUnknown, Confidence: -1}
	for _, tp := range typePatterns {
		matches := len(tp.re.FindAllString(text, -1))
		score := float64(matches) / (float64(words) / 100.0)
		if score > 1.0 {
			score = 1.0
		}
		if score > best.Confidence {
			best = domain.Classification{Type: tp.docType, Confidence: score}
		}
	}
	return best
}
