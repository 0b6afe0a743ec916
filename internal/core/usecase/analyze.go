package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/kanoonsathi/legal-ai-backend/internal/core/domain"
	"github.com/kanoonsathi/legal-ai-backend/internal/core/ports"
)

// AnalyzeDocumentUseCase runs the synchronous analysis pipeline:
// classify the text, extract entities, compose the analysis body,
// synthesize the audio response and, for non-English callers, attach a
// translated rendition of the analysis.
type AnalyzeDocumentUseCase struct {
	classifier ports.Classifier
	entities   ports.EntityExtractor
	composer   ports.AnalysisComposer
	translator ports.Translator
	speech     ports.SpeechSynthesizer
	logger     *slog.Logger
}

func NewAnalyzeDocumentUseCase(
	classifier ports.Classifier,
	entities ports.EntityExtractor,
	composer ports.AnalysisComposer,
	translator ports.Translator,
	speech ports.SpeechSynthesizer,
	logger *slog.Logger,
) *AnalyzeDocumentUseCase {
	return &AnalyzeDocumentUseCase{
		classifier: classifier,
		entities:   entities,
		composer:   composer,
		translator: translator,
		speech:     speech,
		logger:     logger,
	}
}

func (uc *AnalyzeDocumentUseCase) Analyze(ctx context.Context, text, language string) (*domain.Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "analyze", errors.New("empty document text"))
	}
	if language == "" {
		language = "en"
	}
	if !domain.SupportedLanguage(language) {
		return nil, domain.WrapError(domain.ErrUnsupportedLanguage, "analyze", errors.New("language "+language))
	}

	classification := uc.classifier.Classify(text)
	matches := uc.entities.Extract(text, classification.Type)
	summary := uc.composer.Compose(classification.Type, text)

	analysis := &domain.Analysis{
		Summary:           summary,
		Entities:          matches,
		ConfidenceScore:   classification.Confidence,
		DocumentTypeLabel: classification.Type.Label(),
		Language:          language,
	}

	// The response audio covers the English analysis. The audio for a
	// translated rendition is produced by the translation flow below.
	audioPath, err := uc.speech.Synthesize(summary, "response", language)
	if err != nil {
		uc.logger.Warn("response_audio_failed", "language", language, "error", err)
	} else {
		analysis.AudioPath = audioPath
	}

	if language != "en" {
		translation, err := uc.translator.Translate(ctx, summary, language)
		if err != nil {
			uc.logger.Warn("analysis_translation_failed", "target_lang", language, "error", err)
		} else {
			analysis.TranslatedText = translation.TranslatedText
			if translation.AudioPath != "" {
				analysis.AudioPath = translation.AudioPath
			}
		}
	}

	return analysis, nil
}
