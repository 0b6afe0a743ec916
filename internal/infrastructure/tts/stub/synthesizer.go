// Package stub is a placeholder speech synthesizer. It writes marker
// WAV files with deterministic names so the API can hand out audio
// URLs today and swap in a real TTS engine later without changing the
// response shape.
package stub

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Audio file prefixes used by the analysis and translation flows.
const (
	PrefixResponse   = "response"
	PrefixTranslated = "translated"
)

// Synthesizer implements ports.SpeechSynthesizer.
type Synthesizer struct {
	dir string
	now func() time.Time
}

func New(dir string) *Synthesizer {
	return &Synthesizer{dir: dir, now: time.Now}
}

// Synthesize writes a stub audio file for text in lang and returns its
// path. The text itself is not rendered; the file content only marks
// which flow produced it.
func (s *Synthesizer) Synthesize(text, prefix, lang string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("tts: prepare audio dir: %w", err)
	}

	filename := fmt.Sprintf("%s_%s_%s.wav", prefix, lang, s.now().Format("20060102150405"))
	path := filepath.Join(s.dir, filename)

	payload := []byte("dummy audio data")
	if prefix == PrefixTranslated {
		payload = []byte("dummy audio data for translation")
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("tts: write %s: %w", filename, err)
	}
	return path, nil
}
