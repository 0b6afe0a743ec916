package ports

import (
	"context"
	"io"

	"github.com/kanoonsathi/legal-ai-backend/internal/core/domain"
)

// DocumentIngestor is the inbound contract for document upload orchestration.
type DocumentIngestor interface {
	Upload(ctx context.Context, filename, mimeType, language string, body io.Reader) (*domain.Document, error)
}

// DocumentAnalyzer is the inbound contract for the synchronous analysis
// pipeline over raw document text.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, text, language string) (*domain.Analysis, error)
}

// Translator is the inbound contract for the translation service.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (*domain.Translation, error)
}

// DocumentReader is the inbound read model for document metadata/state.
type DocumentReader interface {
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	ListRecent(ctx context.Context, limit, offset int) ([]domain.Document, error)
}

// DocumentProcessor is the inbound contract for asynchronous document processing.
type DocumentProcessor interface {
	ProcessByID(ctx context.Context, documentID string) error
}
