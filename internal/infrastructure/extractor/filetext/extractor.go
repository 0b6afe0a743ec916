// Package filetext pulls plain text out of stored source documents.
// UTF-8 text files pass through unchanged; PDFs go through the pdf
// reader. Anything else is rejected as unsupported.
package filetext

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/kanoonsathi/legal-ai-backend/internal/core/domain"
	"github.com/kanoonsathi/legal-ai-backend/internal/core/ports"
)

var pdfMagic = []byte("%PDF-")

type Extractor struct {
	storage ports.ObjectStorage
}

func NewExtractor(storage ports.ObjectStorage) *Extractor {
	return &Extractor{storage: storage}
}

func (e *Extractor) Extract(ctx context.Context, doc *domain.Document) (string, error) {
	reader, err := e.storage.Open(ctx, doc.StoragePath)
	if err != nil {
		return "", fmt.Errorf("open source document: %w", err)
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read source document: %w", err)
	}

	if bytes.HasPrefix(raw, pdfMagic) {
		return extractPDF(raw, doc.Filename)
	}

	if !utf8.Valid(raw) {
		return "", domain.WrapError(domain.ErrUnsupportedFormat, "extract", fmt.Errorf("binary file %s", doc.Filename))
	}
	return strings.TrimSpace(string(raw)), nil
}

func extractPDF(raw []byte, filename string) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", domain.WrapError(domain.ErrUnsupportedFormat, "extract", fmt.Errorf("open pdf %s: %w", filename, err))
	}

	textReader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text from %s: %w", filename, err)
	}
	text, err := io.ReadAll(textReader)
	if err != nil {
		return "", fmt.Errorf("read pdf text from %s: %w", filename, err)
	}
	return strings.TrimSpace(string(text)), nil
}
