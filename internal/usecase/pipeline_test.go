package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxpoletto/newsy/internal/classify"
	"github.com/maxpoletto/newsy/internal/dataset"
	"github.com/maxpoletto/newsy/internal/diary"
	"github.com/maxpoletto/newsy/internal/domain"
	"github.com/maxpoletto/newsy/internal/enrich"
	"github.com/maxpoletto/newsy/internal/logging"
	"github.com/maxpoletto/newsy/internal/render"
	"github.com/maxpoletto/newsy/internal/summarize"
	"github.com/maxpoletto/newsy/internal/taxonomy"
)

func newTestPipeline(t *testing.T, dir, hostMarker string) *Pipeline {
	t.Helper()

	tax := taxonomy.Default()
	require.NoError(t, tax.Validate())

	logger := logging.New("error")
	classifier := classify.New(tax)
	fetcher := enrich.NewFetcher(&http.Client{Timeout: 2 * time.Second}, 500)

	return NewPipeline(PipelineDeps{
		Parser:     diary.NewParser(logger),
		Classifier: classifier,
		Enricher:   enrich.New(fetcher, classifier, hostMarker, 4, logger),
		Assembler:  dataset.New(tax, nil),
		Store:      dataset.NewFileStore(dir, logger),
		Summaries:  summarize.NewGenerator(nil, tax, logger),
		Renderer:   render.New(dir, tax, logger),
		Logger:     logger,
		StatsOut:   &bytes.Buffer{},
	})
}

func TestPipelineEndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := newTestPipeline(t, dir, "bsky.app")

	input := `1. <a href="https://example.gov/2025/01/15/nsf-budget-cuts">NSF budget cuts announced</a>
not a valid line
3. <a href="https://news.example/tariff-hike">New tariffs on imports</a>`

	data, err := p.Run(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, data.Entries, 2)

	first := data.Entries[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "2025-01-15", first.Date)
	assert.Contains(t, first.Themes, "science")
	assert.Contains(t, first.Keywords, "nsf")

	second := data.Entries[1]
	assert.Equal(t, 3, second.ID)
	assert.Contains(t, second.Themes, "trade")

	// All artifacts are on disk.
	for _, name := range []string{"diary_data.json", "diary_data.json.gz", "index.html", "summary.html"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "missing artifact %s", name)
	}

	// The persisted dataset matches the returned value.
	raw, err := os.ReadFile(filepath.Join(dir, "diary_data.json"))
	require.NoError(t, err)
	var persisted domain.Dataset
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Equal(t, data.Metadata.TotalEntries, persisted.Metadata.TotalEntries)
	assert.Equal(t, len(data.Entries), len(persisted.Entries))
}

func TestPipelineEnrichesEligibleEntries(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/profile/ok" {
			_, _ = w.Write([]byte(`<html><body><div data-testid="postText">tariff on imports announced</div></body></html>`))
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	dir := t.TempDir()
	p := newTestPipeline(t, dir, "127.0.0.1")

	input := fmt.Sprintf(`1. <a href="%s/profile/ok">zzz qqq</a>
2. <a href="%s/profile/broken">another zzz</a>`, server.URL, server.URL)

	data, err := p.Run(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, data.Entries, 2)

	// The successful fetch replaced the fallback tags with content tags.
	assert.Equal(t, "tariff on imports announced", data.Entries[0].ContentSnippet)
	assert.Equal(t, []string{"trade"}, data.Entries[0].Themes)

	// The failed fetch kept its original fallback tags.
	assert.Empty(t, data.Entries[1].ContentSnippet)
	assert.Equal(t, []string{"government"}, data.Entries[1].Themes)
}

func TestPipelineRendersSummaryPage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := newTestPipeline(t, dir, "bsky.app")

	input := `1. <a href="https://news.example/tariff-hike">New tariffs on imports</a>`

	_, err := p.Run(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(dir, "summary.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "Trade Policy and Tariffs")
	assert.Contains(t, string(page), "index.html?themes=trade")
}
