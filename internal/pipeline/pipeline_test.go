package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"policyradar/internal/config"
	"policyradar/internal/core"
	"policyradar/internal/registry"
)

func testPipeline(t *testing.T) *Pipeline {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{
		App: config.App{
			DataDir:   filepath.Join(root, "data"),
			LogDir:    filepath.Join(root, "logs"),
			CacheDir:  filepath.Join(root, "cache"),
			BackupDir: filepath.Join(root, "backup"),
			ExportDir: filepath.Join(root, "exports"),
		},
		Fetch: config.Fetch{
			Workers:        2,
			GovConcurrency: 1,
			Timeout:        2 * time.Second,
			MaxRetries:     1,
			RunBudget:      5 * time.Second,
		},
		Pipeline: config.Pipeline{
			MaxPerFeed:    20,
			MaxPerPage:    30,
			MinRelevance:  0.15,
			FreshnessDays: 90,
			RetentionDays: 30,
		},
		Output: config.Output{
			SiteDir:   filepath.Join(root, "docs"),
			IndexPath: filepath.Join(root, "docs", "index.html"),
		},
		Health: config.Health{FailureThreshold: 5, RetryAfterHours: 24},
	}
	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

func cachedArticle(title string) core.Article {
	published := time.Now().Add(-4 * time.Hour)
	return core.Article{
		Title:         title,
		URL:           "https://example.com/" + strings.ReplaceAll(title, " ", "-"),
		Source:        "Example",
		Category:      "Economic Policy",
		PublishedDate: &published,
		Summary:       "Summary text.",
		Scores:        core.RelevanceScores{Overall: 0.6},
	}
}

func TestCacheRoundTrip(t *testing.T) {
	p := testPipeline(t)

	articles := []core.Article{cachedArticle("gst council meets"), cachedArticle("rbi policy review")}
	p.writeCache(articles)

	got := p.loadCache()
	if len(got) != 2 {
		t.Fatalf("loaded %d articles, want 2", len(got))
	}
	if got[0].Title != "gst council meets" {
		t.Errorf("title = %q", got[0].Title)
	}
}

func TestWriteCacheBacksUpPrevious(t *testing.T) {
	p := testPipeline(t)

	p.writeCache([]core.Article{cachedArticle("first edition")})
	p.writeCache([]core.Article{cachedArticle("second edition")})

	backups, err := filepath.Glob(filepath.Join(p.cfg.App.BackupDir, "articles_cache_*.json"))
	if err != nil || len(backups) != 1 {
		t.Fatalf("backups = %v (err %v), want exactly 1", backups, err)
	}
	raw, err := os.ReadFile(backups[0])
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if !strings.Contains(string(raw), "first edition") {
		t.Error("backup does not hold the previous cache")
	}
}

func TestFallbackPrefersCache(t *testing.T) {
	p := testPipeline(t)
	p.writeCache([]core.Article{cachedArticle("cached story")})

	got := p.fallbackArticles()
	if len(got) != 1 || got[0].Title != "cached story" {
		t.Fatalf("fallback = %+v, want the cached story", got)
	}
}

func TestFallbackEmitsSystemNotice(t *testing.T) {
	p := testPipeline(t)

	got := p.fallbackArticles()
	if len(got) != 1 {
		t.Fatalf("got %d articles, want 1 notice", len(got))
	}
	if got[0].Category != core.CategorySystemNotice {
		t.Errorf("category = %q, want system notice", got[0].Category)
	}
}

func TestFallbackIgnoresCorruptCache(t *testing.T) {
	p := testPipeline(t)
	if err := os.WriteFile(p.cachePath(), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	got := p.fallbackArticles()
	if len(got) != 1 || got[0].Category != core.CategorySystemNotice {
		t.Error("corrupt cache did not fall through to the system notice")
	}
}

func TestSearch(t *testing.T) {
	p := testPipeline(t)

	stored := []core.Article{
		cachedArticle("gst council slashes rates"),
		cachedArticle("monsoon session of parliament"),
	}
	if _, err := p.store.SaveArticles(stored); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	got, err := p.Search("GST", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || !strings.Contains(got[0].Title, "gst") {
		t.Errorf("search result = %+v", got)
	}
}

func TestClearCache(t *testing.T) {
	p := testPipeline(t)
	p.writeCache([]core.Article{cachedArticle("stale story")})

	if err := p.ClearCache(); err != nil {
		t.Fatalf("ClearCache: %v", err)
	}
	if _, err := os.Stat(p.cachePath()); !os.IsNotExist(err) {
		t.Error("cache file still present")
	}
	// A second call on a missing cache must not fail.
	if err := p.ClearCache(); err != nil {
		t.Errorf("ClearCache on empty cache: %v", err)
	}
}

func TestFilterCategory(t *testing.T) {
	a := cachedArticle("economic story")
	b := cachedArticle("tech story")
	b.Category = "Technology Policy"
	c := cachedArticle("another tech story")
	c.Category = "Technology Policy"

	all := []core.Article{a, b, c}
	got := filterCategory(all, "Technology Policy")
	if len(got) != 2 || got[0].Title != "tech story" || got[1].Title != "another tech story" {
		t.Errorf("filter = %+v", got)
	}

	// The input slice feeds persistence after filtering and must survive
	// untouched.
	want := []string{"economic story", "tech story", "another tech story"}
	for i, title := range want {
		if all[i].Title != title {
			t.Errorf("input[%d] = %q, want %q", i, all[i].Title, title)
		}
	}
}

func TestNewMirrorsRegistrySources(t *testing.T) {
	p := testPipeline(t)

	n, err := p.store.SourceCount()
	if err != nil {
		t.Fatalf("SourceCount: %v", err)
	}
	if want := len(registry.Sources()); n != want {
		t.Errorf("mirrored %d sources, want %d", n, want)
	}
}
