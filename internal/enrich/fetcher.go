// Package enrich fetches live page content for social-media post entries
// and feeds it back through the classifier.
package enrich

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// strategy is one content-location attempt: a CSS selector plus the
// attribute to read (empty means element text).
type strategy struct {
	selector string
	attr     string
}

// Typical post-content containers, tried in order; first non-empty text wins.
var strategies = []strategy{
	{selector: `div[data-testid="postText"]`},
	{selector: `div.post-content`},
	{selector: `div[class*="post"]`},
	{selector: `meta[property="og:description"]`, attr: "content"},
}

// Fetcher retrieves a page and extracts a bounded content snippet.
type Fetcher struct {
	client *http.Client
	limit  int
}

// NewFetcher wires an HTTP client; a nil client gets sane defaults applied
// by the caller's configuration.
func NewFetcher(client *http.Client, snippetLimit int) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	if snippetLimit <= 0 {
		snippetLimit = 500
	}
	return &Fetcher{client: client, limit: snippetLimit}
}

// Fetch issues a single GET and runs the extraction strategies over the
// response. Any failure (transport, status, no strategy matched) is
// returned to the caller, who treats it as best-effort.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "newsy/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("page returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse page: %w", err)
	}

	return f.extract(doc)
}

func (f *Fetcher) extract(doc *goquery.Document) (string, error) {
	for _, s := range strategies {
		sel := doc.Find(s.selector).First()
		if sel.Length() == 0 {
			continue
		}

		var content string
		if s.attr != "" {
			content, _ = sel.Attr(s.attr)
		} else {
			content = sel.Text()
		}

		content = strings.TrimSpace(content)
		if content != "" {
			return truncate(content, f.limit), nil
		}
	}
	return "", fmt.Errorf("no content strategy matched")
}

// truncate caps by runes, not bytes, so multi-byte text never splits
// mid-character.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
