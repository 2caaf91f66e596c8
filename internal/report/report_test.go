package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxpoletto/newsy/internal/domain"
)

func TestPrintIncludesCompletenessCounters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Print(&buf, domain.Stats{
		TotalEntries:      10,
		SkippedLines:      2,
		EntriesWithDate:   7,
		EligibleEntries:   3,
		EnrichedEntries:   2,
		FailedEnrichments: 1,
		ThemeCounts:       []domain.Count{{Name: "trade", Total: 5}, {Name: "science", Total: 2}},
		KeywordCounts:     []domain.Count{{Name: "tariffs", Total: 4}},
	})

	out := buf.String()
	assert.Contains(t, out, "Processing Statistics")
	assert.Contains(t, out, "Skipped input lines")
	assert.Contains(t, out, "Failed enrichments")
	assert.Contains(t, out, "trade")
	assert.Contains(t, out, "tariffs")
}
