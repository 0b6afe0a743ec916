package ports

import (
	"context"
	"io"

	"github.com/kanoonsathi/legal-ai-backend/internal/core/domain"
)

// DocumentRepository persists and reads document state.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	ListRecent(ctx context.Context, limit, offset int) ([]domain.Document, error)
	UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus, errMessage string) error
	SaveAnalysis(ctx context.Context, id string, analysis domain.Analysis) error
}

// ObjectStorage stores source documents.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// MessageQueue publishes/consumes document-analysis events.
type MessageQueue interface {
	PublishDocumentUploaded(ctx context.Context, documentID string) error
	SubscribeDocumentUploaded(ctx context.Context, handler func(context.Context, string) error) error
}

// TextExtractor extracts plain text from a stored document.
type TextExtractor interface {
	Extract(ctx context.Context, doc *domain.Document) (string, error)
}

// Classifier scores document text against the document-type pattern table.
// It never fails: input that matches nothing classifies as unknown with
// zero confidence.
type Classifier interface {
	Classify(text string) domain.Classification
}

// EntityExtractor scans text with the entity pattern table for the given
// document type. The result is bounded and may be empty.
type EntityExtractor interface {
	Extract(text string, docType domain.DocumentType) []domain.EntityMatch
}

// LawSelector narrows a jurisdiction's statute tables to the few acts
// relevant to a document type.
type LawSelector interface {
	SelectLaws(docType domain.DocumentType, jurisdiction string) []string
}

// AnalysisComposer builds the final analysis text for a document type.
type AnalysisComposer interface {
	Compose(docType domain.DocumentType, text string) string
}

// TranslationCache is the durable memo of prior translations.
type TranslationCache interface {
	Get(text, targetLang string) (string, bool)
	Put(text, targetLang, translation string)
	Len() int
	Save() error
}

// NeuralTranslator is the optional machine-translation backend. Available
// reports whether the backend can serve requests without forcing callers
// to probe it with a throwaway translation.
type NeuralTranslator interface {
	Available(ctx context.Context) bool
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// PhraseTranslator is the dictionary/phrase-substitution fallback. The
// boolean result reports whether any substitution was applied.
type PhraseTranslator interface {
	Supports(targetLang string) bool
	Translate(text, targetLang string) (string, bool)
}

// SpeechSynthesizer writes an audio artifact for the given text and
// returns its path relative to the audio root.
type SpeechSynthesizer interface {
	Synthesize(text, prefix, lang string) (string, error)
}
