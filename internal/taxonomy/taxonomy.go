package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme is one broad policy category with the substring patterns that vote
// for it. Slice order is declaration order and serves as the scoring
// tie-break, so Themes must stay a slice, never a map.
type Theme struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`
}

// Keyword is one granular topic or entity. The first pattern that matches
// flags the keyword; matches are reported in declaration order.
type Keyword struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`
}

// ThemeMeta carries presentation metadata for the thematic summary page.
type ThemeMeta struct {
	Title       string `yaml:"title"`
	Priority    int    `yaml:"priority"`
	Description string `yaml:"description"`
}

// Taxonomy is process-wide static configuration: constructed once at
// startup, validated, then shared read-only by the classifier and the
// summary generator.
type Taxonomy struct {
	Themes   []Theme              `yaml:"themes"`
	Keywords []Keyword            `yaml:"keywords"`
	Meta     map[string]ThemeMeta `yaml:"meta"`
}

// ThemeNames returns theme identifiers in declaration order.
func (t *Taxonomy) ThemeNames() []string {
	names := make([]string, 0, len(t.Themes))
	for _, th := range t.Themes {
		names = append(names, th.Name)
	}
	return names
}

// KeywordNames returns keyword identifiers in declaration order.
func (t *Taxonomy) KeywordNames() []string {
	names := make([]string, 0, len(t.Keywords))
	for _, kw := range t.Keywords {
		names = append(names, kw.Name)
	}
	return names
}

// MetaFor resolves presentation metadata for a theme.
func (t *Taxonomy) MetaFor(theme string) (ThemeMeta, bool) {
	meta, ok := t.Meta[theme]
	return meta, ok
}

// Validate rejects broken static configuration. A taxonomy inconsistency is
// a startup failure, never a per-entry one.
func (t *Taxonomy) Validate() error {
	if len(t.Themes) == 0 {
		return fmt.Errorf("taxonomy has no themes")
	}
	if len(t.Keywords) == 0 {
		return fmt.Errorf("taxonomy has no keywords")
	}

	seen := make(map[string]bool, len(t.Themes))
	for _, th := range t.Themes {
		if th.Name == "" {
			return fmt.Errorf("theme with empty name")
		}
		if seen[th.Name] {
			return fmt.Errorf("duplicate theme %q", th.Name)
		}
		seen[th.Name] = true
		if len(th.Patterns) == 0 {
			return fmt.Errorf("theme %q has no patterns", th.Name)
		}
	}

	seenKw := make(map[string]bool, len(t.Keywords))
	for _, kw := range t.Keywords {
		if kw.Name == "" {
			return fmt.Errorf("keyword with empty name")
		}
		if seenKw[kw.Name] {
			return fmt.Errorf("duplicate keyword %q", kw.Name)
		}
		seenKw[kw.Name] = true
		if len(kw.Patterns) == 0 {
			return fmt.Errorf("keyword %q has no patterns", kw.Name)
		}
	}

	for name := range t.Meta {
		if !seen[name] {
			return fmt.Errorf("theme metadata references unknown theme %q", name)
		}
	}
	for _, th := range t.Themes {
		if _, ok := t.Meta[th.Name]; !ok {
			return fmt.Errorf("theme %q has no metadata", th.Name)
		}
	}

	return nil
}

// Load reads a YAML taxonomy override file and validates it. Used when
// operators maintain their own pattern tables; defaults apply otherwise.
func Load(path string) (*Taxonomy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy %s: %w", path, err)
	}

	var t Taxonomy
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("parse taxonomy %s: %w", path, err)
	}
	if t.Meta == nil {
		t.Meta = map[string]ThemeMeta{}
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("taxonomy %s: %w", path, err)
	}

	return &t, nil
}
