package lawref

import (
	"math/rand"

	"github.com/kanoonsathi/legal-ai-backend/internal/core/domain"
)

// maxLaws caps how many statutes one analysis cites.
const maxLaws = 3

// frameworks is the static jurisdiction -> category -> statute table.
// Loaded once, never mutated.
var frameworks = map[string]map[string][]string{
	"india": {
		"civil": {
			"Code of Civil Procedure, 1908",
			"Indian Contract Act, 1872",
			"Transfer of Property Act, 1882",
			"Specific Relief Act, 1963",
			"Indian Evidence Act, 1872",
		},
		"criminal": {
			"Indian Penal Code, 1860",
			"Code of Criminal Procedure, 1973",
			"Criminal Law Amendment Act",
		},
		"commercial": {
			"Companies Act, 2013",
			"Insolvency and Bankruptcy Code, 2016",
			"Competition Act, 2002",
			"Foreign Exchange Management Act, 1999",
		},
		"property": {
			"Registration Act, 1908",
			"Real Estate (Regulation and Development) Act, 2016",
		},
		"family": {
			"Hindu Marriage Act, 1955",
			"Special Marriage Act, 1954",
			"Indian Succession Act, 1925",
		},
	},
	"us": {
		"civil": {
			"Federal Rules of Civil Procedure",
			"Uniform Commercial Code",
		},
		"criminal": {
			"Federal Criminal Code and Rules",
			"Model Penal Code",
		},
		"commercial": {
			"Securities Act of 1933",
			"Securities Exchange Act of 1934",
			"Sarbanes-Oxley Act",
		},
	},
}

// categoriesByType maps a document type to the statute categories worth
// citing. Legislation stays empty: which acts apply depends on the
// specific instrument, not its kind.
var categoriesByType = map[domain.DocumentType][]string{
	domain.TypeContract:     {"civil", "commercial"},
	domain.TypeJudgment:     {"civil", "criminal"},
	domain.TypeLegislation:  {},
	domain.TypeWill:         {"civil", "family"},
	domain.TypeAffidavit:    {"civil", "criminal"},
	domain.TypeNotice:       {"civil", "commercial"},
	domain.TypeLegalOpinion: {"civil", "commercial"},
	domain.TypeMOU:          {"commercial"},
}

// Selector narrows the statute tables to a small citable subset. The
// random source is injected so tests can pin the sample.
type Selector struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// SelectLaws concatenates the statutes of every category mapped to the
// document type, preserving category then intra-category order, and
// samples maxLaws of them at random when the list is longer. An unknown
// jurisdiction yields an empty result.
func (s *Selector) SelectLaws(docType domain.DocumentType, jurisdiction string) []string {
	tables, ok := frameworks[jurisdiction]
	if !ok {
		return nil
	}

	var laws []string
	for _, category := range categoriesByType[docType] {
		laws = append(laws, tables[category]...)
	}
	if len(laws) <= maxLaws {
		return laws
	}

	picked := s.rng.Perm(len(laws))[:maxLaws]
	sample := make([]string, 0, maxLaws)
	for _, i := range picked {
		sample = append(sample, laws[i])
	}
	return sample
}
