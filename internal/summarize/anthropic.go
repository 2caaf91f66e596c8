// Package summarize generates per-theme prose summaries, either through a
// remote text-generation API or a deterministic local fallback.
package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/maxpoletto/newsy/internal/config"
	"github.com/maxpoletto/newsy/internal/domain"
	"github.com/maxpoletto/newsy/internal/ports"
	"github.com/maxpoletto/newsy/internal/taxonomy"
)

// AnthropicClient implements ports.Summarizer against the Anthropic
// messages API.
type AnthropicClient struct {
	endpoint   string
	model      string
	apiKey     string
	maxTokens  int
	topEntries int
	tax        *taxonomy.Taxonomy
	httpClient *http.Client
}

var _ ports.Summarizer = (*AnthropicClient)(nil)

// NewAnthropicClient builds a client from configuration.
func NewAnthropicClient(cfg config.SummaryConfig, tax *taxonomy.Taxonomy) *AnthropicClient {
	return &AnthropicClient{
		endpoint:   cfg.Endpoint,
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		maxTokens:  cfg.MaxTokens,
		topEntries: cfg.TopEntries,
		tax:        tax,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Summarize posts the theme's curated entries and returns the generated
// text verbatim.
func (c *AnthropicClient) Summarize(ctx context.Context, theme string, entries []domain.Entry) (string, error) {
	if c.apiKey == "" || c.endpoint == "" || c.model == "" {
		return "", fmt.Errorf("summarizer misconfigured")
	}

	meta, ok := c.tax.MetaFor(theme)
	if !ok {
		return "", fmt.Errorf("unknown theme %q", theme)
	}

	body, err := json.Marshal(map[string]any{
		"model":      c.model,
		"max_tokens": c.maxTokens,
		"messages": []map[string]string{
			{"role": "user", "content": c.buildPrompt(meta, entries)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("summarize theme %s: %w", theme, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("summarizer error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	var decoded struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Content) == 0 {
		return "", fmt.Errorf("empty response content")
	}

	return decoded.Content[0].Text, nil
}

func (c *AnthropicClient) buildPrompt(meta taxonomy.ThemeMeta, entries []domain.Entry) string {
	top := entries
	if limit := c.topEntries; limit > 0 && len(top) > limit {
		top = top[:limit]
	}

	var lines []string
	for _, entry := range top {
		lines = append(lines, fmt.Sprintf("- %s (%s)", entry.Title, entry.URL))
	}

	return fmt.Sprintf(`You are creating a summary for a historical archive of federal policy developments.

Theme: %s
Description: %s

Based on these news articles about this theme, write 2-3 paragraphs summarizing the key developments and their significance. Be factual, precise, and cite specific examples from the articles. Each paragraph should be 3-4 sentences.

Articles:
%s

IMPORTANT:
- Be completely factual and accurate
- Reference specific articles when making claims
- Avoid speculation or editorializing
- Focus on documenting what happened according to the sources
- Write in past tense as this is a historical record`,
		meta.Title, meta.Description, strings.Join(lines, "\n"))
}
