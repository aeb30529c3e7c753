package googlenews

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"policyradar/internal/dates"
	"policyradar/internal/extract"
	"policyradar/internal/httpclient"
	"policyradar/internal/relevance"
)

func TestQueryURL(t *testing.T) {
	u := QueryURL("india policy announcement")
	for _, want := range []string{
		"news.google.com/rss/search",
		"q=india+policy+announcement",
		"hl=en-IN",
		"gl=IN",
		"ceid=IN%3Aen",
	} {
		if !strings.Contains(u, want) {
			t.Errorf("QueryURL missing %q in %q", want, u)
		}
	}
}

func TestQueriesIncludeSiteQueries(t *testing.T) {
	qs := Queries()
	if len(qs) < 25 {
		t.Errorf("got %d queries, want at least 25", len(qs))
	}
	siteQueries := 0
	for _, q := range qs {
		if strings.HasPrefix(q, "site:") {
			siteQueries++
		}
	}
	if siteQueries == 0 {
		t.Error("no site: queries over preferred sources")
	}
}

func testFeed() string {
	recent := time.Now().Add(-2 * time.Hour).Format(time.RFC1123Z)
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>Search results</title>
<item>
  <title>Cabinet approves new data protection rules for India</title>
  <link>https://news.example.com/cabinet-data-protection-rules</link>
  <description>The union cabinet cleared the rules for nationwide rollout.</description>
  <pubDate>%s</pubDate>
</item>
<item>
  <title>US senate passes farm subsidy bill in Washington</title>
  <link>https://news.example.com/us-farm-subsidy</link>
  <description>The white house welcomed the American vote.</description>
  <pubDate>%s</pubDate>
</item>
<item>
  <title>Star couple spotted at film premiere gala night</title>
  <link>https://news.example.com/bollywood/star-couple-premiere</link>
  <description>Gossip from the red carpet.</description>
  <pubDate>%s</pubDate>
</item>
</channel></rss>`, recent, recent, recent)
}

func testAugmentor(t *testing.T, serverURL string, maxHits int) *Augmentor {
	t.Helper()
	opts := httpclient.DefaultOptions()
	opts.MaxRetries = 1
	opts.Timeout = 5 * time.Second
	g := New(httpclient.New(opts), extract.New(dates.NewResolver(), 20, 30), relevance.NewScorer(), maxHits)
	g.Endpoint = serverURL
	g.sleep = func(context.Context) {}
	return g
}

func TestRunFiltersLowRelevance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("gl") != "IN" {
			t.Errorf("query missing gl=IN: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, testFeed())
	}))
	defer srv.Close()

	g := testAugmentor(t, srv.URL, 1)
	articles := g.Run(context.Background())

	if len(articles) != 1 {
		t.Fatalf("got %d articles, want 1", len(articles))
	}
	a := articles[0]
	if a.Title != "Cabinet approves new data protection rules for India" {
		t.Errorf("kept wrong article: %q", a.Title)
	}
	if a.Source != "Google News" {
		t.Errorf("source = %q", a.Source)
	}
	if a.Scores.Overall < 0.2 {
		t.Errorf("overall = %v, want >= 0.2", a.Scores.Overall)
	}
}

func TestRunStopsAtMaxHits(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, testFeed())
	}))
	defer srv.Close()

	g := testAugmentor(t, srv.URL, 3)
	articles := g.Run(context.Background())

	if len(articles) != 3 {
		t.Fatalf("got %d articles, want cap of 3", len(articles))
	}
	if requests >= len(Queries()) {
		t.Errorf("made %d requests, expected early stop before all %d queries", requests, len(Queries()))
	}
}

func TestRunSkipsFailedQueries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	g := testAugmentor(t, srv.URL, 10)
	if articles := g.Run(context.Background()); len(articles) != 0 {
		t.Errorf("got %d articles from failing endpoint, want 0", len(articles))
	}
}

func TestRunHonoursContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, testFeed())
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := testAugmentor(t, srv.URL, 100)
	if articles := g.Run(ctx); len(articles) != 0 {
		t.Errorf("got %d articles from cancelled context, want 0", len(articles))
	}
}
