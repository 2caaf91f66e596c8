package diary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidLines(t *testing.T) {
	t.Parallel()

	input := `1. <a href="https://example.com/2025/01/15/first">First story</a>
2. <a href="https://example.com/second">Second story</a>`

	p := NewParser(nil)
	entries, skipped, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 0, skipped)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].ID)
	assert.Equal(t, "https://example.com/2025/01/15/first", entries[0].URL)
	assert.Equal(t, "First story", entries[0].Title)
	assert.Equal(t, "2025-01-15", entries[0].Date)
	assert.Empty(t, entries[0].Themes)
	assert.Empty(t, entries[0].Keywords)

	assert.Equal(t, 2, entries[1].ID)
	assert.Equal(t, "", entries[1].Date)
}

func TestParseSkipsMalformedLines(t *testing.T) {
	t.Parallel()

	input := `1. <a href="https://example.com/a">A</a>
this line is not an entry
3. <a href="https://example.com/c">C</a>`

	p := NewParser(nil)
	entries, skipped, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, skipped)
	require.Len(t, entries, 2)

	// IDs are raw line numbers, so the skipped line leaves a gap.
	assert.Equal(t, 1, entries[0].ID)
	assert.Equal(t, 3, entries[1].ID)
}

func TestParsePreservesInputOrder(t *testing.T) {
	t.Parallel()

	input := `1. <a href="https://example.com/z">Z</a>
2. <a href="https://example.com/a">A</a>
3. <a href="https://example.com/m">M</a>`

	p := NewParser(nil)
	entries, _, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Z", entries[0].Title)
	assert.Equal(t, "A", entries[1].Title)
	assert.Equal(t, "M", entries[2].Title)
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	p := NewParser(nil)
	entries, skipped, err := p.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
	assert.Equal(t, 0, skipped)
}

func TestParseAllLinesMalformed(t *testing.T) {
	t.Parallel()

	input := `not an entry
also not an entry`

	p := NewParser(nil)
	entries, skipped, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, skipped)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestClipTruncatesByRunes(t *testing.T) {
	t.Parallel()

	s := strings.Repeat("é", 10)
	clipped := clip(s, 4)
	assert.Equal(t, "éééé", clipped)
	assert.Equal(t, s, clip(s, 10))
}
