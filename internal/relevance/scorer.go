// Package relevance implements the rule-based policy classifier: five
// sub-scores, sector re-categorization, keyword extraction and tag
// assignment. Classification is deliberately keyword-driven; there is no
// learned model here.
package relevance

import (
	"strings"
	"time"

	"policyradar/internal/core"
)

// Scorer computes relevance scores for articles. Now is injectable for
// tests; the zero value uses time.Now.
type Scorer struct {
	Now func() time.Time
}

// NewScorer returns a Scorer with the production clock.
func NewScorer() *Scorer {
	return &Scorer{}
}

func (s *Scorer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Score computes all sub-scores and the overall for the article, reassigns
// a generic category when a sector match is confident, and populates
// keywords and tags. Two passes: sector first (so category reassignment
// cannot feed back into scoring), then the remaining sub-scores.
func (s *Scorer) Score(a *core.Article) {
	text := a.Text()
	isGov := a.Metadata.SourceType == core.SourceGovernment

	// Pass 1: sector specificity and category reassignment.
	sector, sectorScore := SectorSpecificity(text)
	if sectorScore > 0.2 && sector != "" && IsGenericCategory(a.Category) {
		a.Category = sector
	}

	// Pass 2: remaining sub-scores.
	g := GeographicMultiplier(text)
	policy := s.policyRelevance(a, text, isGov)
	reliability := s.sourceReliability(a, isGov)
	recency := s.recency(a, isGov)

	var overall float64
	if isGov {
		overall = 0.6*policy + 0.3*reliability + 0.1*recency
		if isHighImpact(text) && overall < 0.8 {
			overall = 0.8
		}
	} else {
		overall = 0.5*policy + 0.3*reliability + 0.15*recency + 0.05*sectorScore
	}
	overall *= g
	overall = clamp01(overall)

	a.Scores = core.RelevanceScores{
		PolicyRelevance:   clamp01(policy * g),
		SourceReliability: reliability,
		Recency:           recency,
		SectorSpecificity: clamp01(sectorScore),
		Overall:           overall,
	}

	a.Keywords = ExtractKeywords(text)
	a.Tags = AssignTags(text)
}

// policyRelevance computes the policy sub-score before the geographic
// multiplier is applied.
func (s *Scorer) policyRelevance(a *core.Article, text string, isGov bool) float64 {
	if isGov {
		if IsOrganizational(a.Title) {
			return 0.1
		}
		if isHighImpact(text) {
			return 0.85
		}
		return 0.70
	}

	exclusion := exclusionScore(text)
	protection := policyProtection(text)
	if exclusion*(1-protection) > 0.6 {
		return 0
	}

	score := 0.15
	if anyKeyword(text, strongContextIndicators) ||
		anyKeyword(text, businessPolicyKeywords) ||
		anyKeyword(text, defenseIndicators) {
		score = 0.5
	}

	high := float64(countKeywords(text, highRelevanceKeywords)) * 0.1
	if high > 0.3 {
		high = 0.3
	}
	medium := float64(countKeywords(text, mediumRelevanceKeywords)) * 0.05
	if medium > 0.2 {
		medium = 0.2
	}
	return clamp01(score + high + medium)
}

// exclusionScore scans the weighted non-policy categories; the per-category
// contribution is capped at 1 and the total sum is divided by 3, capped at 1.
func exclusionScore(text string) float64 {
	total := 0.0
	for _, cat := range exclusionCategories {
		matches := countKeywords(text, cat.keywords)
		if matches == 0 {
			continue
		}
		contribution := float64(matches) / float64(len(cat.keywords)) * cat.weight * 1.5
		if contribution > 1 {
			contribution = 1
		}
		total += contribution
	}
	return clamp01(total / 3)
}

// policyProtection returns the discount applied to the exclusion score:
// the highest matching tier wins.
func policyProtection(text string) float64 {
	contextHits := countKeywords(text, contextIndicators)
	switch {
	case anyKeyword(text, exceptionKeywords) || contextHits >= 2:
		return 0.9
	case contextHits >= 1 && anyKeyword(text, validationKeywords):
		return 0.7
	case anyKeyword(text, businessPolicyKeywords) || contextHits >= 1:
		return 0.5
	default:
		return 0.1
	}
}

// sourceReliability scores the publisher: government sources are fully
// trusted, others come from the curated rating table, default 0.5.
func (s *Scorer) sourceReliability(a *core.Article, isGov bool) float64 {
	if isGov {
		return 1.0
	}
	name := strings.ToLower(a.Source)
	for _, entry := range reliabilityRatings {
		if strings.Contains(name, entry.match) {
			return float64(entry.rating) / 5.0
		}
	}
	return 0.5
}

// recency maps article age onto [0.5, 1.0]; undated articles get a
// source-type-dependent prior.
func (s *Scorer) recency(a *core.Article, isGov bool) float64 {
	if a.PublishedDate == nil {
		if isGov {
			return 0.8
		}
		return 0.4
	}
	age := s.now().Sub(*a.PublishedDate)
	switch {
	case age <= 24*time.Hour:
		return 1.0
	case age <= 72*time.Hour:
		return 0.9
	case age <= 168*time.Hour:
		return 0.7
	default:
		return 0.5
	}
}

// GeographicMultiplier attenuates clearly-foreign items: 0.1 with foreign
// context and no Indian context, 0.8 with neither, 1.0 otherwise.
func GeographicMultiplier(text string) float64 {
	india := anyKeyword(text, indiaKeywords)
	foreign := anyKeyword(text, foreignKeywords)

	// "congress" alone is ambiguous between the Indian party and the U.S.
	// legislature; U.S. companions settle it.
	if !foreign && !india && strings.Contains(text, "congress") && anyKeyword(text, usDisambiguators) {
		foreign = true
	}

	switch {
	case foreign && !india:
		return 0.1
	case !foreign && !india:
		return 0.8
	default:
		return 1.0
	}
}

// IsOrganizational reports whether a title is site boilerplate ("About Us",
// "Privacy Policy", ...) rather than news. An exact phrase match is always
// boilerplate; a prefix match is spared when the rest of the title names a
// policy instrument ("Disclaimer regarding the new FDI notification").
func IsOrganizational(title string) bool {
	t := strings.ToLower(strings.TrimSpace(title))
	matched := false
	for _, phrase := range organizationalPhrases {
		if t == phrase {
			return true
		}
		if strings.HasPrefix(t, phrase) {
			matched = true
		}
	}
	if !matched {
		return false
	}
	for _, word := range strings.FieldsFunc(t, func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	}) {
		for _, indicator := range policyIndicators {
			if strings.HasPrefix(word, indicator) {
				return false
			}
		}
	}
	return true
}

// isHighImpact requires at least two distinct high-impact keyword hits.
func isHighImpact(text string) bool {
	return countKeywords(text, highImpactKeywords) >= 2
}

// ExtractKeywords returns up to 10 lowercase policy keywords present in the
// text, sector vocabulary first.
func ExtractKeywords(text string) []string {
	const limit = 10
	var out []string
	seen := make(map[string]bool)

	add := func(kw string) bool {
		if seen[kw] || len(out) >= limit {
			return len(out) < limit
		}
		seen[kw] = true
		out = append(out, kw)
		return true
	}

	for _, sector := range sortedSectors() {
		for _, kw := range sectorKeywords[sector] {
			if strings.Contains(text, kw) && !add(kw) {
				return out
			}
		}
	}
	for _, kw := range highRelevanceKeywords {
		if strings.Contains(text, kw) && !add(kw) {
			return out
		}
	}
	return out
}

func sortedSectors() []string {
	out := Sectors()
	// Deterministic keyword order regardless of map iteration.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func anyKeyword(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func countKeywords(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
