package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/kanoonsathi/legal-ai-backend/internal/core/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type classifierFake struct {
	result domain.Classification
}

func (f *classifierFake) Classify(string) domain.Classification { return f.result }

type entitiesFake struct {
	result []domain.EntityMatch
}

func (f *entitiesFake) Extract(string, domain.DocumentType) []domain.EntityMatch { return f.result }

type composerFake struct {
	summary string
}

func (f *composerFake) Compose(domain.DocumentType, string) string { return f.summary }

type translatorFake struct {
	result *domain.Translation
	err    error
	calls  int
}

func (f *translatorFake) Translate(_ context.Context, text, targetLang string) (*domain.Translation, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &domain.Translation{
		TranslatedText: "translated:" + text,
		SourceText:     text,
		SourceLang:     "en",
		TargetLang:     targetLang,
		AudioPath:      "translated_" + targetLang + ".wav",
	}, nil
}

type speechFake struct {
	err   error
	calls []string
}

func (f *speechFake) Synthesize(_, prefix, lang string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	path := prefix + "_" + lang + ".wav"
	f.calls = append(f.calls, path)
	return path, nil
}

func newAnalyzeUseCase(cls domain.Classification, translator *translatorFake, speech *speechFake) *AnalyzeDocumentUseCase {
	return NewAnalyzeDocumentUseCase(
		&classifierFake{result: cls},
		&entitiesFake{result: []domain.EntityMatch{{Text: "John Smith", Type: "PERSON"}}},
		&composerFake{summary: "This document appears to be a legal contract."},
		translator,
		speech,
		testLogger(),
	)
}

func TestAnalyzeEnglishDocument(t *testing.T) {
	translator := &translatorFake{}
	speech := &speechFake{}
	uc := newAnalyzeUseCase(domain.Classification{Type: domain.TypeContract, Confidence: 0.8}, translator, speech)

	analysis, err := uc.Analyze(context.Background(), "whereas the parties agree", "en")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if analysis.DocumentTypeLabel != "Legal Contract" {
		t.Fatalf("unexpected label %q", analysis.DocumentTypeLabel)
	}
	if analysis.ConfidenceScore != 0.8 {
		t.Fatalf("unexpected confidence %v", analysis.ConfidenceScore)
	}
	if len(analysis.Entities) != 1 || analysis.Entities[0].Type != "PERSON" {
		t.Fatalf("unexpected entities %+v", analysis.Entities)
	}
	if analysis.AudioPath != "response_en.wav" {
		t.Fatalf("unexpected audio %q", analysis.AudioPath)
	}
	if translator.calls != 0 {
		t.Fatalf("english analysis must not translate, got %d calls", translator.calls)
	}
	if analysis.TranslatedText != "" {
		t.Fatalf("unexpected translated text %q", analysis.TranslatedText)
	}
}

func TestAnalyzeTranslatesForNonEnglish(t *testing.T) {
	translator := &translatorFake{}
	speech := &speechFake{}
	uc := newAnalyzeUseCase(domain.Classification{Type: domain.TypeContract, Confidence: 0.8}, translator, speech)

	analysis, err := uc.Analyze(context.Background(), "whereas the parties agree", "hi")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if translator.calls != 1 {
		t.Fatalf("expected one translation call, got %d", translator.calls)
	}
	if !strings.HasPrefix(analysis.TranslatedText, "translated:") {
		t.Fatalf("unexpected translated text %q", analysis.TranslatedText)
	}
	if analysis.AudioPath != "translated_hi.wav" {
		t.Fatalf("expected translation audio, got %q", analysis.AudioPath)
	}
}

func TestAnalyzeTranslationFailureIsNonFatal(t *testing.T) {
	translator := &translatorFake{err: errors.New("translator down")}
	speech := &speechFake{}
	uc := newAnalyzeUseCase(domain.Classification{Type: domain.TypeContract, Confidence: 0.8}, translator, speech)

	analysis, err := uc.Analyze(context.Background(), "whereas the parties agree", "hi")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if analysis.TranslatedText != "" {
		t.Fatalf("expected no translated text, got %q", analysis.TranslatedText)
	}
	if analysis.AudioPath != "response_hi.wav" {
		t.Fatalf("expected response audio to survive, got %q", analysis.AudioPath)
	}
}

func TestAnalyzeRejectsEmptyText(t *testing.T) {
	uc := newAnalyzeUseCase(domain.Classification{}, &translatorFake{}, &speechFake{})

	_, err := uc.Analyze(context.Background(), "   ", "en")
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalyzeRejectsUnknownLanguage(t *testing.T) {
	uc := newAnalyzeUseCase(domain.Classification{}, &translatorFake{}, &speechFake{})

	_, err := uc.Analyze(context.Background(), "some text", "zz")
	if !domain.IsKind(err, domain.ErrUnsupportedLanguage) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
}
