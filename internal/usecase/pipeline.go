package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/maxpoletto/newsy/internal/classify"
	"github.com/maxpoletto/newsy/internal/dataset"
	"github.com/maxpoletto/newsy/internal/diary"
	"github.com/maxpoletto/newsy/internal/domain"
	"github.com/maxpoletto/newsy/internal/enrich"
	"github.com/maxpoletto/newsy/internal/ports"
	"github.com/maxpoletto/newsy/internal/report"
	"github.com/maxpoletto/newsy/internal/summarize"
)

// DatasetFileName is the artifact consumed by the rendered pages.
const DatasetFileName = "diary_data.json"

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Parser     *diary.Parser
	Classifier *classify.Classifier
	Enricher   *enrich.Enricher
	Assembler  *dataset.Assembler
	Store      ports.DatasetStore
	Summaries  *summarize.Generator
	Renderer   ports.SiteRenderer
	Logger     *slog.Logger
	StatsOut   io.Writer
}

// Pipeline implements the one-shot processing workflow: parse, tag,
// enrich, assemble, persist, summarize, render, report.
type Pipeline struct {
	parser     *diary.Parser
	classifier *classify.Classifier
	enricher   *enrich.Enricher
	assembler  *dataset.Assembler
	store      ports.DatasetStore
	summaries  *summarize.Generator
	renderer   ports.SiteRenderer
	logger     *slog.Logger
	statsOut   io.Writer
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		parser:     deps.Parser,
		classifier: deps.Classifier,
		enricher:   deps.Enricher,
		assembler:  deps.Assembler,
		store:      deps.Store,
		summaries:  deps.Summaries,
		renderer:   deps.Renderer,
		logger:     deps.Logger,
		statsOut:   deps.StatsOut,
	}
}

// Run processes one diary input end to end and returns the finalized
// dataset. Per-entry failures degrade gracefully; only input I/O and
// artifact writes are fatal.
func (p *Pipeline) Run(ctx context.Context, input io.Reader) (domain.Dataset, error) {
	p.logger.Info("starting diary processing")

	entries, skipped, err := p.parser.Parse(input)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("parse input: %w", err)
	}

	p.logger.Info("tagging entries", "count", len(entries))
	for i := range entries {
		p.classifier.Tag(&entries[i])
	}

	eligible := 0
	for i := range entries {
		if p.enricher.Eligible(entries[i].URL) {
			eligible++
		}
	}
	enriched, failed := p.enricher.EnrichAll(ctx, entries)

	data := p.assembler.Build(entries)
	if err := p.store.Save(data, DatasetFileName); err != nil {
		return domain.Dataset{}, fmt.Errorf("save dataset: %w", err)
	}

	summaries := p.summaries.GenerateAll(ctx, data.Entries)

	if err := p.renderer.RenderIndex(data); err != nil {
		return domain.Dataset{}, fmt.Errorf("render index: %w", err)
	}
	if err := p.renderer.RenderSummary(data, summaries); err != nil {
		return domain.Dataset{}, fmt.Errorf("render summary: %w", err)
	}

	stats := p.assembler.Stats(entries, dataset.RunCounts{
		SkippedLines:      skipped,
		EligibleEntries:   eligible,
		EnrichedEntries:   enriched,
		FailedEnrichments: failed,
	})
	if p.statsOut != nil {
		report.Print(p.statsOut, stats)
	}

	p.logger.Info("processing complete", "entries", len(entries), "skipped", skipped)
	return data, nil
}
