// Package httpadapter exposes the legal document pipeline over HTTP:
// document upload and retrieval, synchronous analysis, translation and
// the audio artifacts produced alongside them.
package httpadapter

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/kanoonsathi/legal-ai-backend/internal/core/domain"
	"github.com/kanoonsathi/legal-ai-backend/internal/core/ports"
	"github.com/kanoonsathi/legal-ai-backend/internal/observability/metrics"
)

type Options struct {
	Service             string
	AudioDir            string
	RateLimitRPS        float64
	RateLimitBurst      int
	MaxInFlight         int
	BackpressureTimeout time.Duration
}

type Router struct {
	ingest     ports.DocumentIngestor
	analyzer   ports.DocumentAnalyzer
	translator ports.Translator
	reader     ports.DocumentReader
	metrics    *metrics.HTTPServerMetrics
	opts       Options
}

func NewRouter(
	ingest ports.DocumentIngestor,
	analyzer ports.DocumentAnalyzer,
	translator ports.Translator,
	reader ports.DocumentReader,
	serverMetrics *metrics.HTTPServerMetrics,
	opts Options,
) *Router {
	if opts.Service == "" {
		opts.Service = "api"
	}
	if opts.BackpressureTimeout <= 0 {
		opts.BackpressureTimeout = 5 * time.Second
	}
	return &Router{
		ingest:     ingest,
		analyzer:   analyzer,
		translator: translator,
		reader:     reader,
		metrics:    serverMetrics,
		opts:       opts,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/documents", rt.documents)
	mux.HandleFunc("/v1/documents/", rt.getDocumentByID)
	mux.HandleFunc("/v1/analyze", rt.analyzeText)
	mux.HandleFunc("/v1/translate", rt.translateText)
	mux.HandleFunc("/v1/audio/", rt.getAudio)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	handler = backpressureMiddleware(handler, rt.opts.MaxInFlight, rt.opts.BackpressureTimeout)
	handler = rateLimitMiddleware(handler, rt.opts.RateLimitRPS, rt.opts.RateLimitBurst)
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(rt.opts.Service, handler)
	}
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) documents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		rt.uploadDocument(w, r)
	case http.MethodGet:
		rt.listDocuments(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (rt *Router) uploadDocument(w http.ResponseWriter, r *http.Request) {
	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	doc, err := rt.ingest.Upload(
		r.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		r.FormValue("language"),
		file,
	)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusAccepted, doc)
}

func (rt *Router) listDocuments(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	docs, err := rt.reader.ListRecent(r.Context(), limit, offset)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (rt *Router) getDocumentByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/documents/")
	if id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document id is required"})
		return
	}

	doc, err := rt.reader.GetByID(r.Context(), id)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (rt *Router) analyzeText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		Text     string `json:"text"`
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	start := time.Now()
	analysis, err := rt.analyzer.Analyze(r.Context(), req.Text, req.Language)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordAnalysis(
			rt.opts.Service,
			analysis.DocumentTypeLabel,
			len(analysis.Entities),
			analysis.ConfidenceScore,
			time.Since(start),
		)
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (rt *Router) translateText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		Text       string `json:"text"`
		TargetLang string `json:"target_lang"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	start := time.Now()
	translation, err := rt.translator.Translate(r.Context(), req.Text, req.TargetLang)
	if err != nil {
		writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordTranslation(rt.opts.Service, translation.TargetLang, translation.Backend, time.Since(start))
		rt.metrics.RecordTranslationCache(rt.opts.Service, translation.Backend == "cache")
	}
	writeJSON(w, http.StatusOK, translation)
}

func (rt *Router) getAudio(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	filename := strings.TrimPrefix(r.URL.Path, "/v1/audio/")
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid audio filename"})
		return
	}

	path := filepath.Join(rt.opts.AudioDir, filename)
	if _, err := os.Stat(path); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "audio file not found"})
		return
	}

	w.Header().Set("Content-Type", "audio/wav")
	http.ServeFile(w, r, path)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
