package enrich

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/maxpoletto/newsy/internal/classify"
	"github.com/maxpoletto/newsy/internal/domain"
)

// Outcome reports one enrichment attempt for operator statistics.
type Outcome struct {
	URL     string
	Snippet string
	Err     error
}

// Enricher runs best-effort content fetches for eligible entries with a
// bounded worker pool, then re-tags the successes. A failed fetch is final
// for the run; the entry keeps its original tags.
type Enricher struct {
	fetcher    *Fetcher
	classifier *classify.Classifier
	hostMarker string
	maxWorkers int
	cache      *snippetCache
	logger     *slog.Logger
}

// New wires the fetcher and classifier. maxWorkers bounds fan-out so large
// inputs cannot exhaust sockets.
func New(fetcher *Fetcher, classifier *classify.Classifier, hostMarker string, maxWorkers int, logger *slog.Logger) *Enricher {
	if maxWorkers <= 0 {
		maxWorkers = 8
	}
	return &Enricher{
		fetcher:    fetcher,
		classifier: classifier,
		hostMarker: hostMarker,
		maxWorkers: maxWorkers,
		cache:      newSnippetCache(),
		logger:     logger,
	}
}

// Eligible reports whether a URL belongs to the social platform whose posts
// get content-fetched.
func (e *Enricher) Eligible(url string) bool {
	return strings.Contains(url, e.hostMarker)
}

// EnrichAll fetches content for every eligible entry and re-tags the ones
// that succeed, mutating entries in place. It returns once the whole batch
// has settled. The returned counts are (enriched, failed).
func (e *Enricher) EnrichAll(ctx context.Context, entries []domain.Entry) (int, int) {
	var eligible []int
	for i := range entries {
		if e.Eligible(entries[i].URL) {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return 0, 0
	}

	e.info("fetching content for posts", "count", len(eligible))

	outcomes := make([]Outcome, len(eligible))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxWorkers)
	for slot, idx := range eligible {
		slot, idx := slot, idx
		g.Go(func() error {
			outcomes[slot] = e.fetchOne(gctx, entries[idx].URL)
			return nil
		})
	}
	// Workers never return errors; Wait only barriers the batch.
	_ = g.Wait()

	enriched, failed := 0, 0
	for slot, idx := range eligible {
		out := outcomes[slot]
		if out.Err != nil || out.Snippet == "" {
			failed++
			continue
		}

		entries[idx].ContentSnippet = out.Snippet
		e.classifier.TagEnriched(&entries[idx], out.Snippet)
		enriched++
	}

	e.info("enrichment settled", "enriched", enriched, "failed", failed)
	return enriched, failed
}

func (e *Enricher) fetchOne(ctx context.Context, url string) Outcome {
	if snippet, ok := e.cache.get(url); ok {
		return Outcome{URL: url, Snippet: snippet}
	}

	snippet, err := e.fetcher.Fetch(ctx, url)
	if err != nil {
		e.warn("could not enrich entry", "url", url, "error", err)
		return Outcome{URL: url, Err: err}
	}

	return Outcome{URL: url, Snippet: e.cache.setIfAbsent(url, snippet)}
}

func (e *Enricher) info(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Info(msg, args...)
	}
}

func (e *Enricher) warn(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Warn(msg, args...)
	}
}
