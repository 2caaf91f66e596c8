package enrich

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxpoletto/newsy/internal/classify"
	"github.com/maxpoletto/newsy/internal/domain"
	"github.com/maxpoletto/newsy/internal/taxonomy"
)

func newTestEnricher(t *testing.T, marker string) *Enricher {
	t.Helper()
	fetcher := NewFetcher(&http.Client{Timeout: 2 * time.Second}, 500)
	return New(fetcher, classify.New(taxonomy.Default()), marker, 4, nil)
}

func TestEnrichAllPartialFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok1":
			_, _ = w.Write([]byte(`<html><body><div data-testid="postText">tariff announcement</div></body></html>`))
		case "/ok2":
			_, _ = w.Write([]byte(`<html><head><meta property="og:description" content="nsf research update"></head></html>`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	entries := []domain.Entry{
		{ID: 1, URL: server.URL + "/ok1", Title: "post one", Themes: []string{"government"}, Keywords: []string{}},
		{ID: 2, URL: server.URL + "/ok2", Title: "post two", Themes: []string{"government"}, Keywords: []string{}},
		{ID: 3, URL: server.URL + "/broken", Title: "post three", Themes: []string{"health"}, Keywords: []string{"cdc"}},
		{ID: 4, URL: "https://other.example/not-eligible", Title: "ignored", Themes: []string{"trade"}, Keywords: []string{}},
	}

	e := newTestEnricher(t, "127.0.0.1")
	enriched, failed := e.EnrichAll(context.Background(), entries)

	assert.Equal(t, 2, enriched)
	assert.Equal(t, 1, failed)

	// Successful fetches gained snippets and were re-tagged.
	assert.Equal(t, "tariff announcement", entries[0].ContentSnippet)
	assert.Contains(t, entries[0].Themes, "trade")
	assert.Equal(t, "nsf research update", entries[1].ContentSnippet)
	assert.Contains(t, entries[1].Themes, "science")

	// The failed fetch keeps its original tags untouched.
	assert.Empty(t, entries[2].ContentSnippet)
	assert.Equal(t, []string{"health"}, entries[2].Themes)
	assert.Equal(t, []string{"cdc"}, entries[2].Keywords)

	// Non-eligible entries are never touched.
	assert.Empty(t, entries[3].ContentSnippet)
	assert.Equal(t, []string{"trade"}, entries[3].Themes)
}

func TestEnrichAllReplacesTagsEntirely(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div data-testid="postText">tariff on imports</div></body></html>`))
	}))
	defer server.Close()

	entries := []domain.Entry{
		{ID: 1, URL: server.URL + "/p/1", Title: "zzz", Themes: []string{"government"}, Keywords: []string{}},
	}

	e := newTestEnricher(t, "127.0.0.1")
	enriched, failed := e.EnrichAll(context.Background(), entries)

	require.Equal(t, 1, enriched)
	require.Equal(t, 0, failed)
	assert.Equal(t, []string{"trade"}, entries[0].Themes)
	assert.NotContains(t, entries[0].Themes, "government")
}

func TestEnrichAllCachesByURL(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`<html><body><div class="post-content">cached content</div></body></html>`))
	}))
	defer server.Close()

	url := server.URL + "/p/same"
	e := newTestEnricher(t, "127.0.0.1")

	first := []domain.Entry{{ID: 1, URL: url, Themes: []string{}, Keywords: []string{}}}
	e.EnrichAll(context.Background(), first)
	require.Equal(t, int32(1), hits.Load())

	second := []domain.Entry{{ID: 2, URL: url, Themes: []string{}, Keywords: []string{}}}
	e.EnrichAll(context.Background(), second)

	assert.Equal(t, int32(1), hits.Load(), "repeated enrichment must hit the cache, not the network")
	assert.Equal(t, "cached content", second[0].ContentSnippet)
}

func TestEnrichAllBoundsConcurrency(t *testing.T) {
	t.Parallel()

	const maxWorkers = 3

	var inFlight, peak atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cur := inFlight.Add(1)
		for {
			prev := peak.Load()
			if cur <= prev || peak.CompareAndSwap(prev, cur) {
				break
			}
		}
		time.Sleep(30 * time.Millisecond)
		inFlight.Add(-1)
		_, _ = w.Write([]byte(`<html><body><div class="post-content">slow content</div></body></html>`))
	}))
	defer server.Close()

	fetcher := NewFetcher(&http.Client{Timeout: 5 * time.Second}, 500)
	e := New(fetcher, classify.New(taxonomy.Default()), "127.0.0.1", maxWorkers, nil)

	entries := make([]domain.Entry, 12)
	for i := range entries {
		entries[i] = domain.Entry{
			ID:       i + 1,
			URL:      fmt.Sprintf("%s/p/%d", server.URL, i),
			Themes:   []string{},
			Keywords: []string{},
		}
	}

	enriched, failed := e.EnrichAll(context.Background(), entries)
	require.Equal(t, 12, enriched)
	require.Equal(t, 0, failed)
	assert.LessOrEqual(t, peak.Load(), int32(maxWorkers),
		"in-flight fetches must never exceed the worker limit")
}

func TestEnrichAllNoEligibleEntries(t *testing.T) {
	t.Parallel()

	e := newTestEnricher(t, "bsky.app")
	entries := []domain.Entry{{ID: 1, URL: "https://news.example/a", Themes: []string{"trade"}}}

	enriched, failed := e.EnrichAll(context.Background(), entries)
	assert.Zero(t, enriched)
	assert.Zero(t, failed)
}

func TestFetcherStrategyOrder(t *testing.T) {
	t.Parallel()

	// Both a post div and a meta description exist; the div wins because
	// strategies run in order.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><meta property="og:description" content="meta text"></head>` +
			`<body><div data-testid="postText">div text</div></body></html>`))
	}))
	defer server.Close()

	f := NewFetcher(server.Client(), 500)
	snippet, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "div text", snippet)
}

func TestFetcherSkipsEmptyStrategies(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><meta property="og:description" content="fallback text"></head>` +
			`<body><div data-testid="postText">   </div></body></html>`))
	}))
	defer server.Close()

	f := NewFetcher(server.Client(), 500)
	snippet, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "fallback text", snippet)
}

func TestFetcherTruncatesSnippet(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("é", 600)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div class="post-content">` + long + `</div></body></html>`))
	}))
	defer server.Close()

	f := NewFetcher(server.Client(), 500)
	snippet, err := f.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, 500, len([]rune(snippet)))
}

func TestFetcherErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/notfound":
			w.WriteHeader(http.StatusNotFound)
		case "/nomatch":
			_, _ = w.Write([]byte(`<html><body><p>nothing to extract</p></body></html>`))
		}
	}))
	defer server.Close()

	f := NewFetcher(server.Client(), 500)

	_, err := f.Fetch(context.Background(), server.URL+"/notfound")
	assert.Error(t, err)

	_, err = f.Fetch(context.Background(), server.URL+"/nomatch")
	assert.Error(t, err)
}
