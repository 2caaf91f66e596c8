// Package diary turns the raw line-oriented diary file into structured
// entries and recovers publication dates from URLs where possible.
package diary

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/maxpoletto/newsy/internal/domain"
)

// Expected line shape: `N. <a href="URL">TITLE</a>`.
var lineExpr = regexp.MustCompile(`^\d+\.\s*<a href="([^"]+)">([^<]+)</a>`)

// Parser reads diary lines into Entry values. Malformed lines are skipped
// with a warning; partial success is the normal operating mode.
type Parser struct {
	logger *slog.Logger
}

// NewParser wires an optional logger for skip warnings.
func NewParser(logger *slog.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse scans the reader line by line. Entry IDs are the 1-based line
// numbers of the source, so a skipped line leaves a gap in the ID sequence
// instead of renumbering everything after it.
func (p *Parser) Parse(r io.Reader) ([]domain.Entry, int, error) {
	// Non-nil even when every line is skipped, so the dataset always
	// carries an entries array rather than null.
	entries := []domain.Entry{}
	var (
		skipped int
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		match := lineExpr.FindStringSubmatch(line)
		if match == nil {
			skipped++
			p.warn("could not parse line", "line", lineNo, "text", clip(line, 100))
			continue
		}

		entries = append(entries, domain.Entry{
			ID:       lineNo,
			URL:      match[1],
			Title:    match[2],
			Date:     ExtractDate(match[1]),
			Themes:   []string{},
			Keywords: []string{},
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("read input: %w", err)
	}

	p.info("parsed entries from input", "entries", len(entries), "skipped", skipped)
	return entries, skipped, nil
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func (p *Parser) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}

func (p *Parser) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}
