package relevance

import "strings"

// Tag rules: each rule contributes its tag when any keyword matches. Order
// matters; tags are deduped first-wins and capped at four.
var tagRules = []struct {
	tag      string
	keywords []string
}{
	{"Policy Analysis", []string{"analysis", "impact of", "explained", "what it means", "deep dive", "opinion"}},
	{"Legislative Updates", []string{"bill", "parliament", "lok sabha", "rajya sabha", "ordinance", "legislation", "passed"}},
	{"Regulatory Changes", []string{"regulation", "rules", "notification", "circular", "compliance", "guidelines", "framework"}},
	{"Court Rulings", []string{"supreme court", "high court", "tribunal", "judgment", "verdict", "bench", "petition"}},
	{"Government Initiatives", []string{"scheme", "launched", "cabinet approves", "initiative", "mission", "programme", "yojana"}},
	{"International Relations", []string{"bilateral", "treaty", "summit", "diplomatic", "trade agreement", "foreign minister"}},
}

// personalFinanceMarkers short-circuit tagging: money-advice content gets a
// single tag and nothing else.
var personalFinanceMarkers = []string{
	"personal finance", "mutual fund", "sip", "fixed deposit", "credit card",
	"loan emi", "tax saving", "itr filing", "retirement planning",
}

// AssignTags derives up to four content tags from lowercased article text.
func AssignTags(text string) []string {
	if anyKeyword(text, personalFinanceMarkers) {
		return []string{"Personal Finance"}
	}
	if !anyKeyword(text, strongContextIndicators) {
		return []string{"General News"}
	}

	var tags []string
	seen := make(map[string]bool)
	for _, rule := range tagRules {
		if len(tags) >= 4 {
			break
		}
		if seen[rule.tag] {
			continue
		}
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				seen[rule.tag] = true
				tags = append(tags, rule.tag)
				break
			}
		}
	}
	if len(tags) == 0 {
		tags = []string{"Policy Development"}
	}
	return tags
}
