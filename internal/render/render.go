// Package render emits the static site: index, health dashboard, about page
// and the JSON API dump.
package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"time"

	"policyradar/internal/core"
	"policyradar/internal/health"
	"policyradar/internal/templates"
)

// Renderer writes site artifacts. Now is injectable for tests.
type Renderer struct {
	Now func() time.Time
}

// New returns a Renderer with the production clock.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

type categoryGroup struct {
	Name     string
	Articles []core.Article
}

type indexData struct {
	Generated     string
	Banner        string
	BannerClass   string
	Categories    []categoryGroup
	TotalArticles int
	TotalSources  int
}

// Export is the JSON API dump schema.
type Export struct {
	Generated     string         `json:"generated"`
	TotalArticles int            `json:"total_articles"`
	Articles      []core.Article `json:"articles"`
	Categories    []string       `json:"categories"`
	Sources       []string       `json:"sources"`
}

var (
	indexTmpl  = template.Must(template.New("index").Parse(templates.Index))
	healthTmpl = template.Must(template.New("health").Parse(templates.Health))
	aboutTmpl  = template.Must(template.New("about").Parse(templates.About))
)

// RenderIndex writes the article listing to path. Articles are grouped by
// category preserving their rank order inside each group; a degradation
// banner is shown when the run's fetch success rate was poor.
func (r *Renderer) RenderIndex(path string, articles []core.Article, stats *core.RunStats) error {
	data := indexData{
		Generated:     r.now().Format("02 Jan 2006 15:04 MST"),
		Categories:    groupByCategory(articles),
		TotalArticles: len(articles),
		TotalSources:  countSources(articles),
	}
	data.Banner, data.BannerClass = banner(stats)

	return writeTemplate(path, indexTmpl, data)
}

// banner maps the run success rate onto a degradation notice: none at 80 %
// or better, a warning at 40 %, and a severe notice below that.
func banner(stats *core.RunStats) (text, class string) {
	if stats == nil {
		return "", ""
	}
	rate := stats.SuccessRate()
	switch {
	case rate >= 0.8:
		return "", ""
	case rate >= 0.4:
		return "Some sources were unavailable during this update; coverage may be incomplete.", "warn"
	default:
		return "Significant issues reaching sources during this update; showing what could be collected.", "severe"
	}
}

// RenderHealth writes the feed-health dashboard.
func (r *Renderer) RenderHealth(path string, rep health.Report) error {
	data := struct {
		Generated string
		Report    health.Report
	}{
		Generated: r.now().Format("02 Jan 2006 15:04 MST"),
		Report:    rep,
	}
	return writeTemplate(path, healthTmpl, data)
}

// RenderAbout writes the static about page.
func (r *Renderer) RenderAbout(path string) error {
	data := struct{ Generated string }{r.now().Format("02 Jan 2006 15:04 MST")}
	return writeTemplate(path, aboutTmpl, data)
}

// ExportJSON writes the API dump.
func (r *Renderer) ExportJSON(path string, articles []core.Article) error {
	export := Export{
		Generated:     r.now().Format(time.RFC3339),
		TotalArticles: len(articles),
		Articles:      articles,
		Categories:    distinct(articles, func(a *core.Article) string { return a.Category }),
		Sources:       distinct(articles, func(a *core.Article) string { return a.Source }),
	}
	if export.Articles == nil {
		export.Articles = []core.Article{}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(export); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}

// SystemNotice builds the single placeholder article shown when a run
// produced nothing at all.
func SystemNotice(message string) core.Article {
	now := time.Now()
	return core.Article{
		Title:         "PolicyRadar service notice",
		URL:           "about.html",
		Source:        "PolicyRadar",
		Category:      core.CategorySystemNotice,
		PublishedDate: &now,
		Summary:       message,
		Tags:          []string{"General News"},
	}
}

func writeTemplate(path string, tmpl *template.Template, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return nil
}

// groupByCategory preserves the incoming (ranked) article order both for
// category ordering (by first appearance) and within each group.
func groupByCategory(articles []core.Article) []categoryGroup {
	index := make(map[string]int)
	var groups []categoryGroup
	for _, a := range articles {
		i, ok := index[a.Category]
		if !ok {
			i = len(groups)
			index[a.Category] = i
			groups = append(groups, categoryGroup{Name: a.Category})
		}
		groups[i].Articles = append(groups[i].Articles, a)
	}
	return groups
}

func countSources(articles []core.Article) int {
	seen := make(map[string]bool)
	for _, a := range articles {
		seen[a.Source] = true
	}
	return len(seen)
}

func distinct(articles []core.Article, key func(*core.Article) string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for i := range articles {
		k := key(&articles[i])
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
