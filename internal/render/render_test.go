package render

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"policyradar/internal/core"
	"policyradar/internal/health"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testRenderer() *Renderer {
	return &Renderer{Now: func() time.Time { return testNow }}
}

func sampleArticles() []core.Article {
	published := testNow.Add(-3 * time.Hour)
	return []core.Article{
		{
			Title: "Cabinet approves data protection rules", URL: "https://pib.gov.in/1",
			Source: "PIB Press Releases", Category: "Technology Policy",
			PublishedDate: &published, Summary: "New rules cleared.",
			Tags: []string{"Regulatory Changes"},
		},
		{
			Title: "RBI hikes repo rate", URL: "https://example.com/2",
			Source: "The Hindu", Category: "Economic Policy",
			PublishedDate: &published,
		},
		{
			Title: "SEBI consultation on algo trading", URL: "https://example.com/3",
			Source: "Mint", Category: "Economic Policy",
			PublishedDate: &published,
		},
	}
}

func TestRenderIndex(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	stats := &core.RunStats{TotalFeeds: 10, SuccessfulFeeds: 9}

	if err := testRenderer().RenderIndex(path, sampleArticles(), stats); err != nil {
		t.Fatalf("RenderIndex: %v", err)
	}

	html := readFile(t, path)
	for _, want := range []string{
		"Cabinet approves data protection rules",
		"https://pib.gov.in/1",
		"Technology Policy",
		"Economic Policy",
		"Regulatory Changes",
		"3 articles from 3 sources",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("index missing %q", want)
		}
	}
	if strings.Contains(html, "class=\"banner") {
		t.Error("banner rendered despite 90% success rate")
	}
}

func TestRenderIndexBanners(t *testing.T) {
	tests := []struct {
		successful int
		want       string
	}{
		{9, ""},
		{5, "Some sources were unavailable"},
		{2, "Significant issues"},
	}
	r := testRenderer()
	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "index.html")
		stats := &core.RunStats{TotalFeeds: 10, SuccessfulFeeds: tt.successful}
		if err := r.RenderIndex(path, sampleArticles(), stats); err != nil {
			t.Fatalf("RenderIndex: %v", err)
		}
		html := readFile(t, path)
		if tt.want == "" {
			if strings.Contains(html, "class=\"banner") {
				t.Errorf("success %d/10: unexpected banner", tt.successful)
			}
		} else if !strings.Contains(html, tt.want) {
			t.Errorf("success %d/10: banner %q not rendered", tt.successful, tt.want)
		}
	}
}

func TestRenderIndexGroupsPreserveOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	if err := testRenderer().RenderIndex(path, sampleArticles(), nil); err != nil {
		t.Fatalf("RenderIndex: %v", err)
	}
	html := readFile(t, path)

	tech := strings.Index(html, "Technology Policy")
	econ := strings.Index(html, "Economic Policy")
	if tech == -1 || econ == -1 || tech > econ {
		t.Error("categories not ordered by first appearance of ranked articles")
	}
	rbi := strings.Index(html, "RBI hikes repo rate")
	sebi := strings.Index(html, "SEBI consultation on algo trading")
	if rbi == -1 || sebi == -1 || rbi > sebi {
		t.Error("rank order not preserved within a category")
	}
}

func TestRenderHealth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health.html")
	rep := health.Report{
		Total: 42, Active: 40, Healthy: 35, Unhealthy: 3, AvgScore: 0.87,
		Worst: []core.FeedHealth{
			{URL: "https://bad.example.com/feed", TotalAttempts: 10, SuccessfulAttempts: 1, ConsecutiveFailures: 6, LastErrorType: "timeout"},
		},
	}
	if err := testRenderer().RenderHealth(path, rep); err != nil {
		t.Fatalf("RenderHealth: %v", err)
	}
	html := readFile(t, path)
	for _, want := range []string{"42", "https://bad.example.com/feed", "timeout", "inactive", "0.10"} {
		if !strings.Contains(html, want) {
			t.Errorf("health dashboard missing %q", want)
		}
	}
}

func TestRenderAbout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "about.html")
	if err := testRenderer().RenderAbout(path); err != nil {
		t.Fatalf("RenderAbout: %v", err)
	}
	if !strings.Contains(readFile(t, path), "About PolicyRadar") {
		t.Error("about page missing heading")
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_data.json")
	if err := testRenderer().ExportJSON(path, sampleArticles()); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	var export Export
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if err := json.Unmarshal(raw, &export); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if export.TotalArticles != 3 || len(export.Articles) != 3 {
		t.Errorf("total = %d, articles = %d, want 3", export.TotalArticles, len(export.Articles))
	}
	if len(export.Categories) != 2 {
		t.Errorf("categories = %v, want 2 distinct", export.Categories)
	}
	if len(export.Sources) != 3 {
		t.Errorf("sources = %v, want 3 distinct", export.Sources)
	}
	if _, err := time.Parse(time.RFC3339, export.Generated); err != nil {
		t.Errorf("generated %q is not RFC3339: %v", export.Generated, err)
	}
}

func TestExportJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api_data.json")
	if err := testRenderer().ExportJSON(path, nil); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	raw := readFile(t, path)
	if !strings.Contains(raw, "\"articles\": []") {
		t.Error("empty export must serialize articles as [], not null")
	}
}

func TestSystemNotice(t *testing.T) {
	a := SystemNotice("Feeds were unreachable.")
	if a.Category != core.CategorySystemNotice {
		t.Errorf("category = %q", a.Category)
	}
	if a.Summary != "Feeds were unreachable." {
		t.Errorf("summary = %q", a.Summary)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(raw)
}
