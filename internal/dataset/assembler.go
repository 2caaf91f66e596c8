// Package dataset assembles tagged entries into the snapshot consumed by
// the rendering pages and persists it.
package dataset

import (
	"sort"
	"time"

	"github.com/maxpoletto/newsy/internal/domain"
	"github.com/maxpoletto/newsy/internal/taxonomy"
)

// Assembler finalizes a run into the Dataset value and its statistics.
type Assembler struct {
	tax *taxonomy.Taxonomy
	now func() time.Time
}

// New builds an assembler; now defaults to time.Now and exists for tests.
func New(tax *taxonomy.Taxonomy, now func() time.Time) *Assembler {
	if now == nil {
		now = time.Now
	}
	return &Assembler{tax: tax, now: now}
}

// Build produces the write-once dataset snapshot. A nil entry slice is
// normalized so the JSON entries field is always an array.
func (a *Assembler) Build(entries []domain.Entry) domain.Dataset {
	if entries == nil {
		entries = []domain.Entry{}
	}
	return domain.Dataset{
		Metadata: domain.Metadata{
			Generated:    a.now().Format(time.RFC3339),
			TotalEntries: len(entries),
			Themes:       a.tax.ThemeNames(),
			Keywords:     a.tax.KeywordNames(),
		},
		Entries: entries,
	}
}

// RunCounts carries per-phase counters the assembler cannot derive from the
// entries alone.
type RunCounts struct {
	SkippedLines      int
	EligibleEntries   int
	EnrichedEntries   int
	FailedEnrichments int
}

// Stats aggregates operator-facing statistics. Histograms are sorted by
// descending count; equal counts keep taxonomy declaration order.
func (a *Assembler) Stats(entries []domain.Entry, counts RunCounts) domain.Stats {
	themeTotals := map[string]int{}
	keywordTotals := map[string]int{}
	withDate := 0

	for _, entry := range entries {
		if entry.Date != "" {
			withDate++
		}
		for _, theme := range entry.Themes {
			themeTotals[theme]++
		}
		for _, keyword := range entry.Keywords {
			keywordTotals[keyword]++
		}
	}

	return domain.Stats{
		TotalEntries:      len(entries),
		SkippedLines:      counts.SkippedLines,
		EntriesWithDate:   withDate,
		EligibleEntries:   counts.EligibleEntries,
		EnrichedEntries:   counts.EnrichedEntries,
		FailedEnrichments: counts.FailedEnrichments,
		ThemeCounts:       histogram(a.tax.ThemeNames(), themeTotals),
		KeywordCounts:     histogram(a.tax.KeywordNames(), keywordTotals),
	}
}

func histogram(names []string, totals map[string]int) []domain.Count {
	buckets := make([]domain.Count, 0, len(totals))
	for _, name := range names {
		if totals[name] > 0 {
			buckets = append(buckets, domain.Count{Name: name, Total: totals[name]})
		}
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Total > buckets[j].Total
	})
	return buckets
}
