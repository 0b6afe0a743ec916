package usecase

import (
	"context"

	"github.com/kanoonsathi/legal-ai-backend/internal/core/domain"
	"github.com/kanoonsathi/legal-ai-backend/internal/core/ports"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ReadDocumentsUseCase serves the document read model.
type ReadDocumentsUseCase struct {
	repo ports.DocumentRepository
}

func NewReadDocumentsUseCase(repo ports.DocumentRepository) *ReadDocumentsUseCase {
	return &ReadDocumentsUseCase{repo: repo}
}

func (uc *ReadDocumentsUseCase) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *ReadDocumentsUseCase) ListRecent(ctx context.Context, limit, offset int) ([]domain.Document, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return uc.repo.ListRecent(ctx, limit, offset)
}
