package registry

import (
	"net/url"
	"strings"
	"testing"

	"policyradar/internal/core"
)

func TestSources_WellFormed(t *testing.T) {
	srcs := Sources()
	if len(srcs) < 150 {
		t.Fatalf("registry has %d sources, expected at least 150", len(srcs))
	}

	seen := make(map[string]bool)
	for _, s := range srcs {
		if s.Name == "" {
			t.Error("source with empty name")
		}
		if s.Category == "" {
			t.Errorf("source %q has empty category", s.Name)
		}
		u, err := url.Parse(s.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			t.Errorf("source %q has invalid URL %q", s.Name, s.URL)
		}
		if seen[s.URL] {
			t.Errorf("duplicate source URL %q", s.URL)
		}
		seen[s.URL] = true
	}
}

func TestSources_NoneBlacklisted(t *testing.T) {
	for _, s := range Sources() {
		if IsBlacklisted(s.Name) {
			t.Errorf("registry contains blacklisted source %q", s.Name)
		}
	}
}

func TestIsBlacklisted(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"Bollywood Hungama", true},
		{"Entertainment Weekly", true},
		{"Press Information Bureau", false},
		{"Celeb Gossip Daily", true},
		{"The Hindu National", false},
	}
	for _, tc := range cases {
		if got := IsBlacklisted(tc.name); got != tc.want {
			t.Errorf("IsBlacklisted(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIsGovernment(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"https://pib.gov.in/RssMain.aspx", true},
		{"https://cpcb.nic.in/notifications", true},
		{"Reserve Bank of India", true},
		{"Ministry of Finance", true},
		{"MediaNama", false},
		{"https://www.medianama.com/feed/", false},
		{"The Hindu", false},
	}
	for _, tc := range cases {
		if got := IsGovernment(tc.in); got != tc.want {
			t.Errorf("IsGovernment(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsGovernmentHost(t *testing.T) {
	if !IsGovernmentHost("https://www.meity.gov.in/whatsnew/all") {
		t.Error("meity.gov.in should match the government host predicate")
	}
	if !IsGovernmentHost("https://sansad.in/ls") {
		t.Error("sansad.in should match the government host predicate")
	}
	if IsGovernmentHost("https://www.thehindu.com/news/national/feeder/default.rss") {
		t.Error("thehindu.com must not match the government host predicate")
	}
}

func TestSourceTypeOf(t *testing.T) {
	cases := []struct {
		name, url string
		want      core.SourceType
	}{
		{"Press Information Bureau", "https://pib.gov.in/x", core.SourceGovernment},
		{"LiveLaw", "https://www.livelaw.in/rss", core.SourceLegal},
		{"Observer Research Foundation", "https://www.orfonline.org/feed", core.SourceThinkTank},
		{"Economic Times Policy", "https://economictimes.indiatimes.com/x", core.SourceBusiness},
		{"The Hindu National", "https://www.thehindu.com/x", core.SourceNewsMedia},
		{"Random Blog", "https://example.com/feed", core.SourceOther},
	}
	for _, tc := range cases {
		if got := SourceTypeOf(tc.name, tc.url); got != tc.want {
			t.Errorf("SourceTypeOf(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPreferred(t *testing.T) {
	found := false
	for _, p := range Preferred() {
		if strings.Contains(p, "prsindia") {
			found = true
		}
	}
	if !found {
		t.Error("preferred set should include prsindia.org")
	}
	if !IsPreferred("https://www.livelaw.in/rss/top-stories") {
		t.Error("livelaw.in should be preferred")
	}
}
