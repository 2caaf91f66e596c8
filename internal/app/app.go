package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/maxpoletto/newsy/internal/classify"
	"github.com/maxpoletto/newsy/internal/config"
	"github.com/maxpoletto/newsy/internal/dataset"
	"github.com/maxpoletto/newsy/internal/diary"
	"github.com/maxpoletto/newsy/internal/enrich"
	"github.com/maxpoletto/newsy/internal/logging"
	"github.com/maxpoletto/newsy/internal/ports"
	"github.com/maxpoletto/newsy/internal/render"
	"github.com/maxpoletto/newsy/internal/summarize"
	"github.com/maxpoletto/newsy/internal/taxonomy"
	"github.com/maxpoletto/newsy/internal/usecase"
)

// Application wires configuration to the pipeline use case.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance. A broken taxonomy is a
// startup failure.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	tax := taxonomy.Default()
	if cfg.Taxonomy.Path != "" {
		loaded, err := taxonomy.Load(cfg.Taxonomy.Path)
		if err != nil {
			return nil, err
		}
		tax = loaded
	}
	if err := tax.Validate(); err != nil {
		return nil, fmt.Errorf("taxonomy: %w", err)
	}

	classifier := classify.New(tax)

	fetcher := enrich.NewFetcher(&http.Client{Timeout: cfg.Enrichment.FetchTimeout()}, cfg.Enrichment.SnippetLimit)
	enricher := enrich.New(fetcher, classifier,
		cfg.Enrichment.HostMarker, cfg.Enrichment.MaxConcurrent,
		baseLogger.With("component", "enricher"))

	var remote ports.Summarizer
	if cfg.Summary.Mode == "anthropic" {
		remote = summarize.NewAnthropicClient(cfg.Summary, tax)
	}
	summaries := summarize.NewGenerator(remote, tax, baseLogger.With("component", "summaries"))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Parser:     diary.NewParser(baseLogger.With("component", "parser")),
		Classifier: classifier,
		Enricher:   enricher,
		Assembler:  dataset.New(tax, nil),
		Store:      dataset.NewFileStore(cfg.OutputDir, baseLogger.With("component", "store")),
		Summaries:  summaries,
		Renderer:   render.New(cfg.OutputDir, tax, baseLogger.With("component", "render")),
		Logger:     baseLogger.With("component", "pipeline"),
		StatsOut:   os.Stdout,
	})

	return &Application{cfg: cfg, pipeline: pipeline}, nil
}

// Run executes the pipeline over the configured input file.
func (a *Application) Run(ctx context.Context) error {
	f, err := os.Open(a.cfg.Input)
	if err != nil {
		return fmt.Errorf("open input %s: %w", a.cfg.Input, err)
	}
	defer f.Close()

	_, err = a.pipeline.Run(ctx, f)
	return err
}
