package dedupe

import (
	"testing"

	"policyradar/internal/core"
)

func TestSetRejectsExactDuplicate(t *testing.T) {
	s := NewSet()
	a := &core.Article{Title: "Cabinet approves new rules", URL: "https://example.com/rules"}
	if !s.Add(a) {
		t.Fatal("first add rejected")
	}
	if s.Add(a) {
		t.Fatal("second add of the same article accepted")
	}
	if s.Len() != 1 {
		t.Errorf("len = %d, want 1", s.Len())
	}
}

func TestSetRejectsByNormalizedURL(t *testing.T) {
	s := NewSet()
	s.Add(&core.Article{Title: "First headline", URL: "https://www.example.com/story/"})

	dup := &core.Article{Title: "Totally different headline", URL: "http://example.com/story"}
	if s.Add(dup) {
		t.Error("same story behind scheme/www/slash variants accepted")
	}
}

func TestSetRejectsByNormalizedTitle(t *testing.T) {
	s := NewSet()
	s.Add(&core.Article{Title: "RBI hikes repo rate", URL: "https://a.example.com/1"})

	dup := &core.Article{Title: "  rbi   hikes  REPO rate ", URL: "https://b.example.com/2"}
	if s.Add(dup) {
		t.Error("whitespace/case title variant accepted")
	}
}

func TestSetAcceptsDistinctArticles(t *testing.T) {
	s := NewSet()
	s.Add(&core.Article{Title: "RBI hikes repo rate", URL: "https://a.example.com/1"})
	if !s.Add(&core.Article{Title: "SEBI tightens disclosure norms", URL: "https://b.example.com/2"}) {
		t.Error("distinct article rejected")
	}
	if s.Len() != 2 {
		t.Errorf("len = %d, want 2", s.Len())
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://www.Example.com/Path/", "example.com/Path"},
		{"http://example.com/path?id=1", "example.com/path?id=1"},
		{"https://example.com/path#section", "example.com/path"},
		{"not a url", "not a url"},
	}
	for _, tt := range tests {
		if got := NormalizeURL(tt.in); got != tt.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJaccard(t *testing.T) {
	if got := Jaccard("cabinet approves data protection rules", "cabinet approves data protection rules"); got != 1.0 {
		t.Errorf("identical titles = %v, want 1.0", got)
	}
	if got := Jaccard("cabinet approves rules", "monsoon hits kerala coast"); got != 0 {
		t.Errorf("disjoint titles = %v, want 0", got)
	}
	got := Jaccard(
		"Cabinet approves new data protection rules today",
		"cabinet approves new data protection rules",
	)
	if got <= 0.8 {
		t.Errorf("near-duplicate similarity = %v, want > 0.8", got)
	}
	if Jaccard("", "anything") != 0 {
		t.Error("empty title must score 0")
	}
}

func TestRecentlySimilar(t *testing.T) {
	recent := []Key{
		{URL: "https://example.com/story-1", Title: "Parliament passes the data bill"},
		{URL: "https://example.com/story-2", Title: "Monsoon arrives early in Kerala"},
	}

	byURL := &core.Article{Title: "Unrelated", URL: "http://www.example.com/story-1/"}
	if !RecentlySimilar(byURL, recent) {
		t.Error("URL match not detected")
	}

	byTitle := &core.Article{Title: "parliament passes the data bill", URL: "https://other.example.com/x"}
	if !RecentlySimilar(byTitle, recent) {
		t.Error("near-duplicate title not detected")
	}

	fresh := &core.Article{Title: "SEBI consultation paper on algo trading", URL: "https://other.example.com/y"}
	if RecentlySimilar(fresh, recent) {
		t.Error("fresh article flagged as similar")
	}
}
