package summarize

import (
	"context"
	"log/slog"
	"sort"

	"github.com/maxpoletto/newsy/internal/domain"
	"github.com/maxpoletto/newsy/internal/ports"
	"github.com/maxpoletto/newsy/internal/taxonomy"
)

// Generator orchestrates per-theme summaries. It asks the configured
// summarizer first and substitutes the deterministic local fallback on any
// failure, so an absent or broken remote collaborator never blocks a run.
type Generator struct {
	primary  ports.Summarizer
	fallback *LocalSummarizer
	tax      *taxonomy.Taxonomy
	logger   *slog.Logger
}

// NewGenerator wires the configured summarizer over the local fallback.
// A nil primary means local-only operation.
func NewGenerator(primary ports.Summarizer, tax *taxonomy.Taxonomy, logger *slog.Logger) *Generator {
	return &Generator{
		primary:  primary,
		fallback: NewLocalSummarizer(tax),
		tax:      tax,
		logger:   logger,
	}
}

// GenerateAll groups entries by primary theme and produces one summary per
// theme that has entries, keyed by theme name.
func (g *Generator) GenerateAll(ctx context.Context, entries []domain.Entry) map[string]string {
	themed := GroupByPrimaryTheme(entries)
	summaries := make(map[string]string, len(themed))

	for _, theme := range g.tax.ThemeNames() {
		group, ok := themed[theme]
		if !ok {
			continue
		}

		if g.logger != nil {
			g.logger.Info("generating theme summary", "theme", theme, "entries", len(group))
		}

		summaries[theme] = g.summarize(ctx, theme, group)
	}

	return summaries
}

func (g *Generator) summarize(ctx context.Context, theme string, entries []domain.Entry) string {
	if g.primary != nil {
		text, err := g.primary.Summarize(ctx, theme, entries)
		if err == nil {
			return text
		}
		if g.logger != nil {
			g.logger.Warn("summarizer failed, using fallback", "theme", theme, "error", err)
		}
	}

	text, err := g.fallback.Summarize(ctx, theme, entries)
	if err != nil {
		// Only reachable with a theme missing from the taxonomy, which
		// startup validation already rules out.
		if g.logger != nil {
			g.logger.Error("fallback summary failed", "theme", theme, "error", err)
		}
		return ""
	}
	return text
}

// GroupByPrimaryTheme buckets entries under their first theme.
func GroupByPrimaryTheme(entries []domain.Entry) map[string][]domain.Entry {
	themed := map[string][]domain.Entry{}
	for _, entry := range entries {
		if len(entry.Themes) == 0 {
			continue
		}
		primary := entry.Themes[0]
		themed[primary] = append(themed[primary], entry)
	}
	return themed
}

// ThemesByPriority returns the given themes ordered by their metadata
// priority (ascending).
func ThemesByPriority(tax *taxonomy.Taxonomy, themes []string) []string {
	ordered := append([]string(nil), themes...)
	sort.SliceStable(ordered, func(i, j int) bool {
		mi, _ := tax.MetaFor(ordered[i])
		mj, _ := tax.MetaFor(ordered[j])
		return mi.Priority < mj.Priority
	})
	return ordered
}
