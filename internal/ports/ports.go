package ports

import (
	"context"

	"github.com/maxpoletto/newsy/internal/domain"
)

// Summarizer produces a prose summary for one theme from its curated
// entries. Implementations must stay bounded: no call may block past its
// own timeout, and failure is returned, never swallowed.
type Summarizer interface {
	Summarize(ctx context.Context, theme string, entries []domain.Entry) (string, error)
}

// DatasetStore persists the finalized dataset artifact.
type DatasetStore interface {
	Save(data domain.Dataset, name string) error
}

// SiteRenderer writes the browsable views generated from the dataset.
// Renderers consume the dataset read-only.
type SiteRenderer interface {
	RenderIndex(data domain.Dataset) error
	RenderSummary(data domain.Dataset, summaries map[string]string) error
}
