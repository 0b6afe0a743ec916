package nllb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kanoonsathi/legal-ai-backend/internal/core/domain"
	"github.com/kanoonsathi/legal-ai-backend/internal/infrastructure/resilience"
)

func newTestExecutor() *resilience.Executor {
	cfg := resilience.DefaultConfig()
	cfg.RetryMaxAttempts = 1
	cfg.BreakerEnabled = false
	return resilience.NewExecutor(cfg)
}

func TestTranslateSendsNLLBTags(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"translated_text":"कानूनी दस्तावेज़"}`))
	}))
	defer server.Close()

	client := New(server.URL, "nllb-200-distilled-600M", newTestExecutor())
	got, err := client.Translate(context.Background(), "Legal document", "en", "hi")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got != "कानूनी दस्तावेज़" {
		t.Fatalf("unexpected translation %q", got)
	}
	if captured["source_lang"] != "eng_Latn" || captured["target_lang"] != "hin_Deva" {
		t.Fatalf("unexpected language tags: %v", captured)
	}
}

func TestTranslateRejectsUnknownLanguage(t *testing.T) {
	client := New("http://localhost:1", "nllb", newTestExecutor())
	_, err := client.Translate(context.Background(), "hello", "en", "fr")
	if !domain.IsKind(err, domain.ErrUnsupportedLanguage) {
		t.Fatalf("expected unsupported language error, got %v", err)
	}
}

func TestTranslateIncludesHTTPBodyInError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model is loading", http.StatusNotFound)
	}))
	defer server.Close()

	client := New(server.URL, "nllb", newTestExecutor())
	_, err := client.Translate(context.Background(), "hello", "en", "hi")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "model is loading") {
		t.Fatalf("expected response body in error, got %v", err)
	}
}

func TestAvailableCachesProbe(t *testing.T) {
	probes := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			probes++
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := New(server.URL, "nllb", newTestExecutor())
	ctx := context.Background()
	if !client.Available(ctx) {
		t.Fatal("expected sidecar to be available")
	}
	if !client.Available(ctx) {
		t.Fatal("availability must be stable")
	}
	if probes != 1 {
		t.Fatalf("expected a single probe, got %d", probes)
	}
}

func TestAvailableWithoutBaseURL(t *testing.T) {
	client := New("", "nllb", newTestExecutor())
	if client.Available(context.Background()) {
		t.Fatal("no sidecar configured, must not report available")
	}
}
