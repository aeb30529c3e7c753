package ranker

import (
	"math"
	"testing"
	"time"

	"policyradar/internal/core"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testRanker() *Ranker {
	return &Ranker{Now: func() time.Time { return testNow }}
}

func hoursAgo(h int) *time.Time {
	t := testNow.Add(-time.Duration(h) * time.Hour)
	return &t
}

func TestSourceTier(t *testing.T) {
	tests := []struct {
		source string
		want   int
	}{
		{"PIB Press Releases", 1},
		{"Ministry of Electronics", 1},
		{"PRS Legislative Research", 2},
		{"LiveLaw", 2},
		{"The Hindu National", 3},
		{"Some Regional Blog", 4},
	}
	for _, tt := range tests {
		if got := SourceTier(tt.source); got != tt.want {
			t.Errorf("SourceTier(%q) = %d, want %d", tt.source, got, tt.want)
		}
	}
}

func TestTimelinessTiers(t *testing.T) {
	r := testRanker()
	tests := []struct {
		hours int
		want  float64
	}{
		{2, 1.0},
		{12, 0.8},
		{48, 0.6},
		{100, 0.4},
		{300, 0.2},
		{400, 0.1},
	}
	for _, tt := range tests {
		if got := r.timeliness(hoursAgo(tt.hours)); got != tt.want {
			t.Errorf("timeliness(%dh) = %v, want %v", tt.hours, got, tt.want)
		}
	}
	if got := r.timeliness(nil); got != 0.0 {
		t.Errorf("timeliness(nil) = %v, want 0.0", got)
	}
}

func TestFinalScore(t *testing.T) {
	r := testRanker()
	a := &core.Article{
		Title:         "Cabinet approves new rules",
		URL:           "https://pib.gov.in/x",
		Source:        "PIB Press Releases",
		PublishedDate: hoursAgo(2),
		Scores: core.RelevanceScores{
			PolicyRelevance:   0.85,
			SourceReliability: 1.0,
			SectorSpecificity: 0.3,
		},
	}
	importance := 0.4*0.85 + 0.3*1.0 + 0.3*0.3
	want := 0.6*importance + 0.3*1.0 + 0.1*1.0
	if got := r.FinalScore(a); math.Abs(got-want) > 1e-9 {
		t.Errorf("FinalScore = %v, want %v", got, want)
	}
}

func TestRankOrdersDescending(t *testing.T) {
	r := testRanker()
	articles := []core.Article{
		{
			Title: "Old low-tier story", URL: "https://a.example.com/1",
			Source: "Some Blog", PublishedDate: hoursAgo(400),
			Scores: core.RelevanceScores{PolicyRelevance: 0.2, SourceReliability: 0.5},
		},
		{
			Title: "Fresh official release", URL: "https://pib.gov.in/2",
			Source: "PIB Press Releases", PublishedDate: hoursAgo(1),
			Scores: core.RelevanceScores{PolicyRelevance: 0.85, SourceReliability: 1.0, SectorSpecificity: 0.4},
		},
		{
			Title: "Mid-tier analysis", URL: "https://b.example.com/3",
			Source: "The Hindu", PublishedDate: hoursAgo(30),
			Scores: core.RelevanceScores{PolicyRelevance: 0.6, SourceReliability: 1.0, SectorSpecificity: 0.2},
		},
	}

	scores := r.Rank(articles)
	if len(scores) != 3 {
		t.Fatalf("got %d scores, want 3", len(scores))
	}
	if articles[0].Title != "Fresh official release" {
		t.Errorf("top article = %q", articles[0].Title)
	}
	if articles[2].Title != "Old low-tier story" {
		t.Errorf("bottom article = %q", articles[2].Title)
	}
	for i := 1; i < len(articles); i++ {
		prev := scores[articles[i-1].ContentHash()]
		cur := scores[articles[i].ContentHash()]
		if prev < cur {
			t.Errorf("order violated at %d: %v < %v", i, prev, cur)
		}
	}
}
