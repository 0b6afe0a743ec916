package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/kanoonsathi/legal-ai-backend/internal/core/domain"
	"github.com/kanoonsathi/legal-ai-backend/internal/core/ports"
)

// Translation backends, in the order they are tried.
const (
	BackendCache       = "cache"
	BackendModel       = "model"
	BackendPhrasebook  = "phrasebook"
	BackendPlaceholder = "placeholder"
)

const translationPlaceholder = "[Translation failed. No translation model service is reachable and the phrase dictionary has no entries for this text. Configure TRANSLATE_MODEL_URL to point at a running translation service.]"

// Translations are persisted to the cache file once every savePeriod new
// entries rather than on every write.
const savePeriod = 10

// TranslateTextUseCase resolves a translation through a chain of
// backends: the durable cache, the neural model service when deployed,
// and the embedded phrasebook. Results that came from a real backend
// are cached; a placeholder is returned when every backend declines.
type TranslateTextUseCase struct {
	cache   ports.TranslationCache
	neural  ports.NeuralTranslator
	phrases ports.PhraseTranslator
	speech  ports.SpeechSynthesizer
	logger  *slog.Logger
}

func NewTranslateTextUseCase(
	cache ports.TranslationCache,
	neural ports.NeuralTranslator,
	phrases ports.PhraseTranslator,
	speech ports.SpeechSynthesizer,
	logger *slog.Logger,
) *TranslateTextUseCase {
	return &TranslateTextUseCase{
		cache:   cache,
		neural:  neural,
		phrases: phrases,
		speech:  speech,
		logger:  logger,
	}
}

func (uc *TranslateTextUseCase) Translate(ctx context.Context, text, targetLang string) (*domain.Translation, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "translate", errors.New("empty text"))
	}
	if targetLang == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "translate", errors.New("empty target language"))
	}

	translated, backend := uc.resolve(ctx, text, targetLang)

	if backend != BackendCache && backend != BackendPlaceholder {
		uc.cache.Put(text, targetLang, translated)
		if uc.cache.Len()%savePeriod == 0 {
			if err := uc.cache.Save(); err != nil {
				uc.logger.Warn("translation_cache_save_failed", "error", err)
			}
		}
	}

	result := &domain.Translation{
		TranslatedText: translated,
		SourceText:     text,
		SourceLang:     "en",
		TargetLang:     targetLang,
		Backend:        backend,
	}

	audioPath, err := uc.speech.Synthesize(translated, "translated", targetLang)
	if err != nil {
		uc.logger.Warn("translation_audio_failed", "target_lang", targetLang, "error", err)
	} else {
		result.AudioPath = audioPath
	}

	return result, nil
}

func (uc *TranslateTextUseCase) resolve(ctx context.Context, text, targetLang string) (string, string) {
	if translated, ok := uc.cache.Get(text, targetLang); ok {
		uc.logger.Debug("translation_cache_hit", "target_lang", targetLang)
		return translated, BackendCache
	}

	if uc.neural.Available(ctx) {
		translated, err := uc.neural.Translate(ctx, text, "en", targetLang)
		if err != nil {
			uc.logger.Warn("neural_translation_failed", "target_lang", targetLang, "error", err)
		} else if translated != "" {
			return translated, BackendModel
		}
	}

	if uc.phrases.Supports(targetLang) {
		if translated, ok := uc.phrases.Translate(text, targetLang); ok {
			return translated, BackendPhrasebook
		}
	}

	return translationPlaceholder, BackendPlaceholder
}
