package core

import (
	"strings"
	"testing"
	"time"
)

func TestHashContent_Stability(t *testing.T) {
	h1 := HashContent("Cabinet approves new rules", "https://pib.gov.in/release/1")
	h2 := HashContent("CABINET APPROVES NEW RULES", "HTTPS://PIB.GOV.IN/release/1")
	if h1 != h2 {
		t.Errorf("hash should be case-insensitive: %s != %s", h1, h2)
	}

	h3 := HashContent("Cabinet approves new rules", "https://pib.gov.in/release/2")
	if h1 == h3 {
		t.Error("different URLs should produce different hashes")
	}
}

func TestArticle_ContentHash(t *testing.T) {
	a := Article{Title: "Test Title", URL: "https://example.gov.in/a"}
	b := Article{Title: "test title", URL: "HTTPS://EXAMPLE.GOV.IN/a", Source: "other"}
	if a.ContentHash() != b.ContentHash() {
		t.Error("content hash must depend only on lowercased title and url")
	}
	if len(a.ContentHash()) != 32 {
		t.Errorf("expected 32-char md5 hex, got %d chars", len(a.ContentHash()))
	}
}

func TestArticle_StorageHash_VariesByDate(t *testing.T) {
	d1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)
	d2 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)

	a := Article{Title: "Same", URL: "https://example.com/x", PublishedDate: &d1}
	b := Article{Title: "Same", URL: "https://example.com/x", PublishedDate: &d2}

	if a.ContentHash() != b.ContentHash() {
		t.Error("content hash must not depend on date")
	}
	if a.StorageHash() == b.StorageHash() {
		t.Error("storage hash must depend on date")
	}

	// Same day, different clock time: storage hash uses the date only.
	d3 := time.Date(2025, 6, 1, 23, 0, 0, 0, time.Local)
	c := Article{Title: "Same", URL: "https://example.com/x", PublishedDate: &d3}
	if a.StorageHash() != c.StorageHash() {
		t.Error("storage hash should be stable within a day")
	}
}

func TestArticle_Text(t *testing.T) {
	a := Article{Title: "RBI Circular", Summary: "New NORMS issued", Content: "Details"}
	text := a.Text()
	if text != strings.ToLower(text) {
		t.Error("Text() must be lowercase")
	}
	for _, want := range []string{"rbi circular", "new norms issued", "details"} {
		if !strings.Contains(text, want) {
			t.Errorf("Text() missing %q: %s", want, text)
		}
	}
}

func TestFeedHealth_Score(t *testing.T) {
	cases := []struct {
		name     string
		health   FeedHealth
		expected float64
	}{
		{"untried", FeedHealth{}, 0},
		{"all success", FeedHealth{TotalAttempts: 4, SuccessfulAttempts: 4}, 1.0},
		{"half", FeedHealth{TotalAttempts: 10, SuccessfulAttempts: 5}, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.health.Score(); got != tc.expected {
				t.Errorf("Score() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestRunStats_SuccessRate(t *testing.T) {
	s := RunStats{}
	if s.SuccessRate() != 1.0 {
		t.Error("empty run should report full success")
	}
	s = RunStats{TotalFeeds: 10, SuccessfulFeeds: 4}
	if got := s.SuccessRate(); got != 0.4 {
		t.Errorf("SuccessRate() = %v, want 0.4", got)
	}
}
