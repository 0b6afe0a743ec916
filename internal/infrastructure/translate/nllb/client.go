// Package nllb talks to an NLLB translation sidecar over HTTP. The
// sidecar hosts the facebook/nllb-200 checkpoint; this client maps ISO
// language codes to NLLB script tags and handles readiness probing so
// callers can fall back when the model service is absent.
package nllb

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/kanoonsathi/legal-ai-backend/internal/core/domain"
	"github.com/kanoonsathi/legal-ai-backend/internal/infrastructure/resilience"
)

// languageTags maps API language codes to NLLB-200 BCP-47 style tags.
var languageTags = map[string]string{
	"en":  "eng_Latn",
	"hi":  "hin_Deva",
	"bn":  "ben_Beng",
	"te":  "tel_Telu",
	"mr":  "mar_Deva",
	"ta":  "tam_Taml",
	"ur":  "urd_Arab",
	"gu":  "guj_Gujr",
	"kn":  "kan_Knda",
	"ml":  "mal_Mlym",
	"or":  "ory_Orya",
	"pa":  "pan_Guru",
	"as":  "asm_Beng",
	"mai": "mai_Deva",
	"sat": "sat_Olck",
	"ks":  "kas_Arab",
	"ne":  "npi_Deva",
	"sd":  "snd_Arab",
	"kok": "kok_Deva",
	"doi": "doi_Deva",
	"mni": "mni_Beng",
	"sa":  "san_Deva",
	"bo":  "bod_Tibt",
}

// LanguageTag resolves an API language code to its NLLB tag.
func LanguageTag(code string) (string, bool) {
	tag, ok := languageTags[code]
	return tag, ok
}

type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
	executor   *resilience.Executor

	probeOnce sync.Once
	ready     bool
}

// New builds a client for the translation sidecar at baseURL. An empty
// baseURL means no sidecar is deployed and Available always reports
// false.
func New(baseURL, model string, executor *resilience.Executor) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: 120 * time.Second},
		executor:   executor,
	}
}

// Available probes the sidecar health endpoint once per process. The
// result is cached: a sidecar that was absent at first use stays
// considered absent, matching the one-shot model load on startup.
func (c *Client) Available(ctx context.Context) bool {
	if c.baseURL == "" {
		return false
	}
	c.probeOnce.Do(func() {
		probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, c.baseURL+"/health", nil)
		if err != nil {
			return
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return
		}
		defer resp.Body.Close()
		c.ready = resp.StatusCode < 300
	})
	return c.ready
}

// Translate renders text from sourceLang into targetLang through the
// sidecar. Unsupported language codes fail before any network call.
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	const op = "nllb.translate"

	sourceTag, ok := LanguageTag(sourceLang)
	if !ok {
		return "", domain.WrapError(domain.ErrUnsupportedLanguage, op, fmt.Errorf("source language %q", sourceLang))
	}
	targetTag, ok := LanguageTag(targetLang)
	if !ok {
		return "", domain.WrapError(domain.ErrUnsupportedLanguage, op, fmt.Errorf("target language %q", targetLang))
	}

	request := map[string]any{
		"model":       c.model,
		"text":        text,
		"source_lang": sourceTag,
		"target_lang": targetTag,
		"max_length":  512,
	}

	var response struct {
		TranslatedText string `json:"translated_text"`
	}
	err := c.executor.Execute(ctx, op, func(ctx context.Context) error {
		return c.postJSON(ctx, "/translate", request, &response, "translate")
	}, classifyTranslateError)
	if err != nil {
		return "", wrapTemporaryIfNeeded(op, err)
	}

	translated := strings.TrimSpace(response.TranslatedText)
	if translated == "" {
		return "", fmt.Errorf("nllb translate: empty result")
	}
	return translated, nil
}
