package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	analysisTotal         *prometheus.CounterVec
	analysisDuration      *prometheus.HistogramVec
	analysisEntities      *prometheus.HistogramVec
	analysisConfidence    *prometheus.HistogramVec
	translationTotal      *prometheus.CounterVec
	translationCacheTotal *prometheus.CounterVec
	translationDuration   *prometheus.HistogramVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "legalai",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "legalai",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "legalai",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	analysisTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "legalai",
			Subsystem: "analysis",
			Name:      "requests_total",
			Help:      "Total completed analyses by identified document type.",
		},
		[]string{"service", "document_type"},
	)
	analysisDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "legalai",
			Subsystem: "analysis",
			Name:      "duration_seconds",
			Help:      "Analysis pipeline duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service"},
	)
	analysisEntities := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "legalai",
			Subsystem: "analysis",
			Name:      "entities",
			Help:      "Distribution of extracted entities per analysis.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 20},
		},
		[]string{"service"},
	)
	analysisConfidence := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "legalai",
			Subsystem: "analysis",
			Name:      "confidence",
			Help:      "Distribution of classification confidence scores.",
			Buckets:   []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1},
		},
		[]string{"service"},
	)
	translationTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "legalai",
			Subsystem: "translation",
			Name:      "requests_total",
			Help:      "Total translation requests by target language and backend.",
		},
		[]string{"service", "target_lang", "backend"},
	)
	translationCacheTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "legalai",
			Subsystem: "translation",
			Name:      "cache_total",
			Help:      "Translation cache lookups by outcome.",
		},
		[]string{"service", "outcome"},
	)
	translationDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "legalai",
			Subsystem: "translation",
			Name:      "duration_seconds",
			Help:      "Translation request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		analysisTotal,
		analysisDuration,
		analysisEntities,
		analysisConfidence,
		translationTotal,
		translationCacheTotal,
		translationDuration,
	)

	return &HTTPServerMetrics{
		registry:              registry,
		requestTotal:          requestTotal,
		requestDuration:       requestDuration,
		requestInFlight:       requestInFlight,
		analysisTotal:         analysisTotal,
		analysisDuration:      analysisDuration,
		analysisEntities:      analysisEntities,
		analysisConfidence:    analysisConfidence,
		translationTotal:      translationTotal,
		translationCacheTotal: translationCacheTotal,
		translationDuration:   translationDuration,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/documents/"):
		return "/v1/documents/{document_id}"
	case strings.HasPrefix(path, "/v1/audio/"):
		return "/v1/audio/{filename}"
	default:
		return path
	}
}

func (m *HTTPServerMetrics) RecordAnalysis(service, documentType string, entityCount int, confidence float64, duration time.Duration) {
	if documentType == "" {
		documentType = "unknown"
	}
	m.analysisTotal.WithLabelValues(service, documentType).Inc()
	m.analysisDuration.WithLabelValues(service).Observe(duration.Seconds())
	m.analysisEntities.WithLabelValues(service).Observe(float64(entityCount))
	m.analysisConfidence.WithLabelValues(service).Observe(confidence)
}

func (m *HTTPServerMetrics) RecordTranslation(service, targetLang, backend string, duration time.Duration) {
	if backend == "" {
		backend = "unknown"
	}
	m.translationTotal.WithLabelValues(service, targetLang, backend).Inc()
	m.translationDuration.WithLabelValues(service).Observe(duration.Seconds())
}

func (m *HTTPServerMetrics) RecordTranslationCache(service string, hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.translationCacheTotal.WithLabelValues(service, outcome).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
