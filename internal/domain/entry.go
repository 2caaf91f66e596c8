package domain

// Entry is a core entity describing a single tagged news item.
// ID matches the 1-based line number of the source file, so skipped
// lines leave gaps in the ID sequence but never renumber later entries.
type Entry struct {
	ID             int      `json:"id"`
	URL            string   `json:"url"`
	Title          string   `json:"title"`
	Date           string   `json:"date,omitempty"`
	Themes         []string `json:"themes"`
	Keywords       []string `json:"keywords"`
	ContentSnippet string   `json:"content_snippet,omitempty"`
}

// Metadata describes the dataset snapshot for downstream renderers.
type Metadata struct {
	Generated    string   `json:"generated"`
	TotalEntries int      `json:"total_entries"`
	Themes       []string `json:"themes"`
	Keywords     []string `json:"keywords"`
}

// Dataset is the terminal artifact of a pipeline run. It is built once,
// persisted, and handed to renderers read-only.
type Dataset struct {
	Metadata Metadata `json:"metadata"`
	Entries  []Entry  `json:"entries"`
}

// Count holds one histogram bucket for operator reporting.
type Count struct {
	Name  string
	Total int
}

// Stats summarizes a run for the operator report. Informational only;
// nothing downstream consumes it.
type Stats struct {
	TotalEntries      int
	SkippedLines      int
	EntriesWithDate   int
	EligibleEntries   int
	EnrichedEntries   int
	FailedEnrichments int
	ThemeCounts       []Count
	KeywordCounts     []Count
}
