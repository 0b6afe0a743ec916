// Package jsonfile persists the translation cache as a single pretty
// printed JSON object on disk. Entries are keyed by source text and
// target language so repeated translation requests never hit the model
// twice.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Cache implements ports.TranslationCache.
type Cache struct {
	path   string
	logger *slog.Logger

	mu      sync.RWMutex
	entries map[string]string
}

// Open loads the cache at path. A missing file starts an empty cache;
// a corrupt file is discarded with a warning rather than failing
// startup, since the cache is strictly an optimisation.
func Open(path string, logger *slog.Logger) (*Cache, error) {
	if path == "" {
		return nil, fmt.Errorf("jsonfile cache: path is empty")
	}
	c := &Cache{
		path:    path,
		logger:  logger,
		entries: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return c, nil
	case err != nil:
		return nil, fmt.Errorf("jsonfile cache: read %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, &c.entries); err != nil {
		logger.Warn("translation_cache_corrupt", "path", path, "error", err)
		c.entries = make(map[string]string)
	}
	return c, nil
}

func cacheKey(text, targetLang string) string {
	return text + "_" + targetLang
}

func (c *Cache) Get(text, targetLang string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	translated, ok := c.entries[cacheKey(text, targetLang)]
	return translated, ok
}

func (c *Cache) Put(text, targetLang, translated string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(text, targetLang)] = translated
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Save writes the cache atomically via a sibling temp file and rename.
func (c *Cache) Save() error {
	c.mu.RLock()
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	err := enc.Encode(c.entries)
	c.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("jsonfile cache: encode: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("jsonfile cache: prepare dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("jsonfile cache: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("jsonfile cache: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("jsonfile cache: close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("jsonfile cache: replace %s: %w", c.path, err)
	}
	return nil
}
