package application

import (
	"context"
	"fmt"
	"log"

	"github.com/docdigest/docdigest/internal/entity"
	"github.com/docdigest/docdigest/internal/infrastructure"
	"github.com/docdigest/docdigest/internal/report"
	"github.com/docdigest/docdigest/internal/repository"
	"github.com/docdigest/docdigest/internal/service"
	"github.com/docdigest/docdigest/internal/summarize"
	"github.com/docdigest/docdigest/internal/transport/handler"
)

// Application holds the wired components. Strategy selection happens once
// here, at startup, and is never re-probed per request.
type Application struct {
	Config *infrastructure.Config

	SummarizeHandler    *handler.Summarize
	UploadHandler       *handler.Upload
	HistoryHandler      *handler.History
	ClearHistoryHandler *handler.ClearHistory
	ReportHandler       *handler.Report
	HealthHandler       *handler.Health

	History repository.HistoryRepository

	cleanup func() error
}

// New creates an application instance with all dependencies.
func New() (*Application, error) {
	cfg, err := infrastructure.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	history, err := newHistory(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating history store: %w", err)
	}

	summarizeStrategy, entityStrategy := resolveStrategies(cfg)

	engine := summarize.NewEngine(summarizeStrategy)
	extractor := entity.NewExtractor(entityStrategy)
	summaryService := service.NewSummary(engine, extractor, history)

	documentReader := repository.NewDocumentReader()
	assembler := report.NewAssembler()

	return &Application{
		Config:              cfg,
		SummarizeHandler:    handler.NewSummarize(summaryService),
		UploadHandler:       handler.NewUpload(documentReader),
		HistoryHandler:      handler.NewHistory(summaryService),
		ClearHistoryHandler: handler.NewClearHistory(summaryService),
		ReportHandler:       handler.NewReport(assembler),
		HealthHandler:       handler.NewHealth(engine.StrategyName()),
		History:             history,
		cleanup:             history.Close,
	}, nil
}

// Close cleans up application resources.
func (a *Application) Close() error {
	if a.cleanup != nil {
		return a.cleanup()
	}
	return nil
}

func newHistory(cfg *infrastructure.Config) (repository.HistoryRepository, error) {
	switch cfg.HistoryBackend {
	case infrastructure.HistoryBackendMemory:
		return repository.NewMemoryHistory(), nil
	case infrastructure.HistoryBackendGCS:
		return repository.NewGCSHistory(context.Background(), cfg.HistoryBucket)
	default:
		return repository.NewFileHistory(cfg.HistoryFile), nil
	}
}

// resolveStrategies picks the model-backed strategies when an API key is
// configured, with a one-time advisory log when none is. Gemini wins when
// both providers are configured.
func resolveStrategies(cfg *infrastructure.Config) (summarize.Strategy, entity.Strategy) {
	switch {
	case cfg.GeminiAPIKey != "":
		client := repository.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		log.Printf("🤖 Model strategies enabled: Gemini (%s)", cfg.GeminiModel)
		return client, client
	case cfg.OpenAIAPIKey != "":
		client := repository.NewOpenAIClient(cfg.OpenAIAPIKey)
		log.Printf("🤖 Model strategies enabled: OpenAI")
		return client, client
	default:
		log.Printf("⚠️ No model API key configured. Using extractive summarization and pattern-based entity extraction.")
		return summarize.NewExtractive(), nil
	}
}
