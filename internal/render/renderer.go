// Package render writes the browsable HTML views. It is a pure consumer of
// the dataset and never feeds anything back into the pipeline.
package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/maxpoletto/newsy/internal/domain"
	"github.com/maxpoletto/newsy/internal/ports"
	"github.com/maxpoletto/newsy/internal/summarize"
	"github.com/maxpoletto/newsy/internal/taxonomy"
)

// Renderer generates index.html (chronological, client-side filtering) and
// summary.html (thematic) in the output directory.
type Renderer struct {
	dir    string
	tax    *taxonomy.Taxonomy
	logger *slog.Logger

	indexTmpl   *template.Template
	summaryTmpl *template.Template
}

var _ ports.SiteRenderer = (*Renderer)(nil)

// New parses the embedded templates once.
func New(dir string, tax *taxonomy.Taxonomy, logger *slog.Logger) *Renderer {
	return &Renderer{
		dir:         dir,
		tax:         tax,
		logger:      logger,
		indexTmpl:   template.Must(template.New("index").Parse(indexTemplate)),
		summaryTmpl: template.Must(template.New("summary").Parse(summaryTemplate)),
	}
}

type indexPage struct {
	Total   int
	Data    template.JS
	Entries []domain.Entry
}

// RenderIndex writes the chronological view with the dataset embedded as
// JSON for the in-browser filters.
func (r *Renderer) RenderIndex(data domain.Dataset) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal dataset for index: %w", err)
	}

	page := indexPage{
		Total:   data.Metadata.TotalEntries,
		Data:    template.JS(raw),
		Entries: data.Entries,
	}
	return r.write("index.html", r.indexTmpl, page)
}

type summarySection struct {
	Theme   string
	Title   string
	Count   int
	Summary template.HTML
}

type summaryPage struct {
	Total     int
	Generated string
	Sections  []summarySection
}

// RenderSummary writes the thematic view, sections ordered by theme
// priority. Summary text is trusted HTML produced by the summarizer.
func (r *Renderer) RenderSummary(data domain.Dataset, summaries map[string]string) error {
	themed := summarize.GroupByPrimaryTheme(data.Entries)

	present := make([]string, 0, len(summaries))
	for _, theme := range r.tax.ThemeNames() {
		if _, ok := summaries[theme]; ok {
			present = append(present, theme)
		}
	}
	ordered := summarize.ThemesByPriority(r.tax, present)

	page := summaryPage{
		Total:     data.Metadata.TotalEntries,
		Generated: time.Now().Format("January 2, 2006"),
	}
	for _, theme := range ordered {
		meta, _ := r.tax.MetaFor(theme)
		page.Sections = append(page.Sections, summarySection{
			Theme:   theme,
			Title:   meta.Title,
			Count:   len(themed[theme]),
			Summary: template.HTML(summaries[theme]),
		})
	}

	return r.write("summary.html", r.summaryTmpl, page)
}

func (r *Renderer) write(name string, tmpl *template.Template, page any) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(r.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := tmpl.Execute(f, page); err != nil {
		_ = f.Close()
		return fmt.Errorf("render %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	if r.logger != nil {
		r.logger.Info("rendered page", "path", path)
	}
	return nil
}
