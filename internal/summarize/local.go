package summarize

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/maxpoletto/newsy/internal/domain"
	"github.com/maxpoletto/newsy/internal/ports"
	"github.com/maxpoletto/newsy/internal/taxonomy"
)

// LocalSummarizer builds a deterministic summary paragraph without any
// network dependency. It is both a configuration choice and the fallback
// when the remote summarizer fails.
type LocalSummarizer struct {
	tax *taxonomy.Taxonomy
}

var _ ports.Summarizer = (*LocalSummarizer)(nil)

// NewLocalSummarizer shares the validated taxonomy for theme metadata.
func NewLocalSummarizer(tax *taxonomy.Taxonomy) *LocalSummarizer {
	return &LocalSummarizer{tax: tax}
}

// Summarize renders the lead sentence, the top keyword groups, and the
// first five article links as HTML paragraphs. Same input, same output.
func (l *LocalSummarizer) Summarize(_ context.Context, theme string, entries []domain.Entry) (string, error) {
	meta, ok := l.tax.MetaFor(theme)
	if !ok {
		return "", fmt.Errorf("unknown theme %q", theme)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<p>The administration implemented significant changes in %s. ",
		strings.ToLower(meta.Description))
	fmt.Fprintf(&b, "This section documents %d articles tracking these developments.</p>\n\n", len(entries))

	if groups := topKeywordGroups(entries, 3); len(groups) > 0 {
		b.WriteString("<p>Key areas of focus included ")
		parts := make([]string, 0, len(groups))
		for _, g := range groups {
			parts = append(parts, fmt.Sprintf("%s (%d articles)", g.Name, g.Total))
		}
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(".</p>\n\n")
	}

	b.WriteString("<p>Notable developments included: ")
	sampled := entries
	if len(sampled) > 5 {
		sampled = sampled[:5]
	}
	links := make([]string, 0, len(sampled))
	for _, entry := range sampled {
		links = append(links, fmt.Sprintf(`<a href="%s">%s</a>`,
			html.EscapeString(entry.URL), html.EscapeString(entry.Title)))
	}
	b.WriteString(strings.Join(links, "; "))
	b.WriteString(".</p>")

	return b.String(), nil
}

// topKeywordGroups counts entries per keyword and keeps the largest n
// groups. Ties keep first-appearance order across the entry sequence.
func topKeywordGroups(entries []domain.Entry, n int) []domain.Count {
	totals := map[string]int{}
	var order []string
	for _, entry := range entries {
		for _, keyword := range entry.Keywords {
			if totals[keyword] == 0 {
				order = append(order, keyword)
			}
			totals[keyword]++
		}
	}

	groups := make([]domain.Count, 0, len(order))
	for _, name := range order {
		groups = append(groups, domain.Count{Name: name, Total: totals[name]})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total > groups[j].Total
	})
	if len(groups) > n {
		groups = groups[:n]
	}
	return groups
}
