// Package ranker orders articles by a blend of importance, timeliness and
// publisher tier.
package ranker

import (
	"sort"
	"strings"
	"time"

	"policyradar/internal/core"
)

// Source tiers by name substring; first match wins, default tier 4.
var tierMarkers = []struct {
	tier    int
	markers []string
}{
	{1, []string{
		"pib", "rbi", "sebi", "trai", "ministry", "government", "niti aayog",
		"supreme court", "parliament", "cci", "meity", "dot india",
	}},
	{2, []string{
		"prs legislative", "livelaw", "bar and bench", "medianama",
		"internet freedom", "observer research", "carnegie", "supreme court observer",
		"down to earth", "mongabay",
	}},
	{3, []string{
		"the hindu", "indian express", "economic times", "mint", "business standard",
		"hindustan times", "times of india", "ndtv", "reuters", "the print",
		"the wire", "scroll",
	}},
}

// Ranker sorts articles by final relevance. Now is injectable for tests.
type Ranker struct {
	Now func() time.Time
}

// New returns a Ranker with the production clock.
func New() *Ranker {
	return &Ranker{}
}

func (r *Ranker) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Rank sorts articles in place, highest final score first, and returns the
// per-article final scores keyed by content hash.
func (r *Ranker) Rank(articles []core.Article) map[string]float64 {
	scores := make(map[string]float64, len(articles))
	for i := range articles {
		scores[articles[i].ContentHash()] = r.FinalScore(&articles[i])
	}
	sort.SliceStable(articles, func(i, j int) bool {
		return scores[articles[i].ContentHash()] > scores[articles[j].ContentHash()]
	})
	return scores
}

// FinalScore blends importance, timeliness and tier bonus.
func (r *Ranker) FinalScore(a *core.Article) float64 {
	importance := 0.4*a.Scores.PolicyRelevance +
		0.3*a.Scores.SourceReliability +
		0.3*a.Scores.SectorSpecificity
	timeliness := r.timeliness(a.PublishedDate)
	bonus := float64(5-SourceTier(a.Source)) / 4.0
	return 0.6*importance + 0.3*timeliness + 0.1*bonus
}

func (r *Ranker) timeliness(published *time.Time) float64 {
	if published == nil {
		return 0.0
	}
	age := r.now().Sub(*published)
	switch {
	case age <= 6*time.Hour:
		return 1.0
	case age <= 24*time.Hour:
		return 0.8
	case age <= 72*time.Hour:
		return 0.6
	case age <= 168*time.Hour:
		return 0.4
	case age <= 336*time.Hour:
		return 0.2
	default:
		return 0.1
	}
}

// SourceTier classifies a source name into tiers 1 (official) through 4
// (other) by substring match.
func SourceTier(source string) int {
	name := strings.ToLower(source)
	for _, group := range tierMarkers {
		for _, marker := range group.markers {
			if strings.Contains(name, marker) {
				return group.tier
			}
		}
	}
	return 4
}
