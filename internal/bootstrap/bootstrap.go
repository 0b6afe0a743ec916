package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/kanoonsathi/legal-ai-backend/internal/config"
	"github.com/kanoonsathi/legal-ai-backend/internal/core/ports"
	"github.com/kanoonsathi/legal-ai-backend/internal/core/usecase"
	"github.com/kanoonsathi/legal-ai-backend/internal/infrastructure/analysis"
	"github.com/kanoonsathi/legal-ai-backend/internal/infrastructure/cache/jsonfile"
	"github.com/kanoonsathi/legal-ai-backend/internal/infrastructure/classifier"
	"github.com/kanoonsathi/legal-ai-backend/internal/infrastructure/entities"
	"github.com/kanoonsathi/legal-ai-backend/internal/infrastructure/extractor/filetext"
	"github.com/kanoonsathi/legal-ai-backend/internal/infrastructure/lawref"
	"github.com/kanoonsathi/legal-ai-backend/internal/infrastructure/queue/nats"
	"github.com/kanoonsathi/legal-ai-backend/internal/infrastructure/repository/postgres"
	"github.com/kanoonsathi/legal-ai-backend/internal/infrastructure/resilience"
	"github.com/kanoonsathi/legal-ai-backend/internal/infrastructure/storage/localfs"
	"github.com/kanoonsathi/legal-ai-backend/internal/infrastructure/translate/nllb"
	"github.com/kanoonsathi/legal-ai-backend/internal/infrastructure/translate/phrasebook"
	"github.com/kanoonsathi/legal-ai-backend/internal/infrastructure/tts/stub"
)

type App struct {
	Config config.Config
	Logger *slog.Logger

	Queue ports.MessageQueue
	Repo  ports.DocumentRepository

	IngestUC    ports.DocumentIngestor
	AnalyzeUC   ports.DocumentAnalyzer
	TranslateUC ports.Translator
	ReadUC      ports.DocumentReader
	ProcessUC   ports.DocumentProcessor

	closeFn func()
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewDocumentRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultConfig())

	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: executor,
	})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	phrases, err := phrasebook.Load()
	if err != nil {
		return nil, fmt.Errorf("load phrasebook: %w", err)
	}

	translationCache, err := jsonfile.Open(cfg.CacheFile, logger)
	if err != nil {
		return nil, fmt.Errorf("open translation cache: %w", err)
	}
	neural := nllb.New(cfg.TranslateModelURL, cfg.TranslateModelName, executor)

	speech := stub.New(cfg.AudioDir)
	laws := lawref.New(rand.New(rand.NewSource(time.Now().UnixNano())))
	composer := analysis.NewComposer(laws, cfg.Jurisdiction)
	extractor := filetext.NewExtractor(storage)

	translateUC := usecase.NewTranslateTextUseCase(translationCache, neural, phrases, speech, logger)
	analyzeUC := usecase.NewAnalyzeDocumentUseCase(classifier.New(), entities.New(), composer, translateUC, speech, logger)
	ingestUC := usecase.NewIngestDocumentUseCase(repo, storage, queue)
	readUC := usecase.NewReadDocumentsUseCase(repo)
	processUC := usecase.NewProcessDocumentUseCase(repo, extractor, analyzeUC)

	return &App{
		Config: cfg,
		Logger: logger,

		Queue: queue,
		Repo:  repo,

		IngestUC:    ingestUC,
		AnalyzeUC:   analyzeUC,
		TranslateUC: translateUC,
		ReadUC:      readUC,
		ProcessUC:   processUC,

		closeFn: func() {
			if err := translationCache.Save(); err != nil {
				logger.Warn("translation_cache_save_failed", "error", err)
			}
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
