package domain

// Classification is the outcome of scoring document text against the
// document-type pattern table. Confidence is a clamped match-density
// metric in [0,1], not a calibrated probability.
type Classification struct {
	Type       DocumentType `json:"document_type"`
	Confidence float64      `json:"confidence"`
}

// EntityMatch is a substring matched by a named entity pattern.
type EntityMatch struct {
	Text string `json:"word"`
	Type string `json:"entity"`
}

// Analysis is the full response bundle for one document analysis request.
type Analysis struct {
	Summary           string        `json:"summary"`
	Entities          []EntityMatch `json:"entities"`
	ConfidenceScore   float64       `json:"confidence_score"`
	DocumentTypeLabel string        `json:"document_type"`
	Language          string        `json:"language"`
	TranslatedText    string        `json:"translated_text,omitempty"`
	AudioPath         string        `json:"audio_response,omitempty"`
}

// Translation is the result of a translation request. TranslatedText may
// be the diagnostic placeholder when neither the neural backend nor the
// phrasebook produced anything.
type Translation struct {
	TranslatedText string `json:"translated_text"`
	SourceText     string `json:"source_text"`
	SourceLang     string `json:"source_lang"`
	TargetLang     string `json:"target_lang"`
	AudioPath      string `json:"audio_response"`

	// Backend records which translation path produced the result
	// (cache, model, phrasebook or placeholder). Not part of the API
	// response shape.
	Backend string `json:"-"`
}
