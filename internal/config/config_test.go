package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NATS_SUBJECT", "")
	t.Setenv("JURISDICTION", "")
	t.Setenv("TRANSLATE_MODEL_URL", "")
	t.Setenv("API_RATE_LIMIT_RPS", "")

	cfg := Load()
	if cfg.NATSSubject != "documents.analyze" {
		t.Fatalf("expected default subject documents.analyze, got %q", cfg.NATSSubject)
	}
	if cfg.Jurisdiction != "india" {
		t.Fatalf("expected default jurisdiction india, got %q", cfg.Jurisdiction)
	}
	if cfg.TranslateModelURL != "" {
		t.Fatalf("expected no translation model by default, got %q", cfg.TranslateModelURL)
	}
	if cfg.APIRateLimitRPS != 0 {
		t.Fatalf("expected rate limiting off by default, got %v", cfg.APIRateLimitRPS)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("JURISDICTION", "us")
	t.Setenv("TRANSLATE_MODEL_URL", "http://localhost:8600")
	t.Setenv("API_RATE_LIMIT_RPS", "2.5")
	t.Setenv("API_RATE_LIMIT_BURST", "10")
	t.Setenv("API_MAX_IN_FLIGHT", "64")

	cfg := Load()
	if cfg.Jurisdiction != "us" {
		t.Fatalf("expected jurisdiction override, got %q", cfg.Jurisdiction)
	}
	if cfg.TranslateModelURL != "http://localhost:8600" {
		t.Fatalf("expected model url override, got %q", cfg.TranslateModelURL)
	}
	if cfg.APIRateLimitRPS != 2.5 || cfg.APIRateLimitBurst != 10 {
		t.Fatalf("expected rate limit overrides, got %v/%d", cfg.APIRateLimitRPS, cfg.APIRateLimitBurst)
	}
	if cfg.APIMaxInFlight != 64 {
		t.Fatalf("expected in-flight override, got %d", cfg.APIMaxInFlight)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("API_RATE_LIMIT_RPS", "not-a-number")
	t.Setenv("API_MAX_IN_FLIGHT", "many")

	cfg := Load()
	if cfg.APIRateLimitRPS != 0 {
		t.Fatalf("expected fallback rps, got %v", cfg.APIRateLimitRPS)
	}
	if cfg.APIMaxInFlight != 0 {
		t.Fatalf("expected fallback in-flight, got %d", cfg.APIMaxInFlight)
	}
}
