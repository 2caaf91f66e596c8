// Package report prints the operator-facing run statistics.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/maxpoletto/newsy/internal/domain"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0969DA")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E7681"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2DA44E")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D29922")).
			Bold(true)

	bucketStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8250DF"))
)

const topKeywords = 15

// Print writes the statistics summary. Skipped lines and failed
// enrichments are called out so operators can judge data completeness.
func Print(w io.Writer, stats domain.Stats) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("=== Processing Statistics ==="))
	line(w, "Total entries", stats.TotalEntries, valueStyle)
	line(w, "Entries with dates", stats.EntriesWithDate, valueStyle)
	line(w, "Social-post entries", stats.EligibleEntries, valueStyle)
	line(w, "Enriched entries", stats.EnrichedEntries, valueStyle)
	line(w, "Skipped input lines", stats.SkippedLines, warnStyle)
	line(w, "Failed enrichments", stats.FailedEnrichments, warnStyle)

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("=== Theme Distribution ==="))
	for _, bucket := range stats.ThemeCounts {
		fmt.Fprintf(w, "  %s: %d\n", bucketStyle.Render(bucket.Name), bucket.Total)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("=== Top Keywords ==="))
	buckets := stats.KeywordCounts
	if len(buckets) > topKeywords {
		buckets = buckets[:topKeywords]
	}
	for _, bucket := range buckets {
		fmt.Fprintf(w, "  %s: %d\n", bucketStyle.Render(bucket.Name), bucket.Total)
	}
}

func line(w io.Writer, label string, value int, style lipgloss.Style) {
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label+":"), style.Render(fmt.Sprintf("%d", value)))
}
