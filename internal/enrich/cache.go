package enrich

import "sync"

// snippetCache stores fetched content by URL for the lifetime of a run.
// Writes are if-absent so concurrent fetches of the same URL stay
// consistent: the first stored value wins.
type snippetCache struct {
	mu       sync.Mutex
	snippets map[string]string
}

func newSnippetCache() *snippetCache {
	return &snippetCache{snippets: make(map[string]string)}
}

func (c *snippetCache) get(url string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	snippet, ok := c.snippets[url]
	return snippet, ok
}

// setIfAbsent stores the snippet unless one already exists and returns the
// value now held for the URL.
func (c *snippetCache) setIfAbsent(url, snippet string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.snippets[url]; ok {
		return existing
	}
	c.snippets[url] = snippet
	return snippet
}
