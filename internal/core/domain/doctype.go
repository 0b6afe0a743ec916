package domain

// DocumentType is the coarse legal-document category that drives which
// analysis template and entity pattern set apply.
type DocumentType string

const (
	TypeContract     DocumentType = "contract"
	TypeJudgment     DocumentType = "judgment"
	TypeLegislation  DocumentType = "legislation"
	TypeWill         DocumentType = "will"
	TypeAffidavit    DocumentType = "affidavit"
	TypeNotice       DocumentType = "notice"
	TypeLegalOpinion DocumentType = "legal_opinion"
	TypeMOU          DocumentType = "mou"
	TypeUnknown      DocumentType = "unknown"
)

var typeLabels = map[DocumentType]string{
	TypeContract:     "Legal Contract",
	TypeJudgment:     "Court Judgment",
	TypeLegislation:  "Statutory Legislation",
	TypeWill:         "Last Will and Testament",
	TypeAffidavit:    "Legal Affidavit",
	TypeNotice:       "Legal Notice",
	TypeLegalOpinion: "Legal Opinion",
	TypeMOU:          "Memorandum of Understanding",
	TypeUnknown:      "Legal Document",
}

// Label returns the human-readable name shown to API clients.
func (t DocumentType) Label() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return typeLabels[TypeUnknown]
}
