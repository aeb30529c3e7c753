// Package registry holds the curated list of PolicyRadar sources: Indian
// government portals, regulators, legal news sites, think tanks and
// mainstream media, each with a default policy category. The set changes
// only by edit.
package registry

import (
	"net/url"
	"strings"

	"policyradar/internal/core"
)

// blacklist contains substrings that disqualify a source. A source whose
// name contains any of these is never fetched and its articles never emitted.
var blacklist = []string{
	"bollywood",
	"entertainment",
	"cricbuzz",
	"gossip",
	"celeb",
	"astrology",
	"horoscope",
	"lifestyle desk",
}

// preferred names sources whose results get priority treatment in the
// Google News site-restricted queries.
var preferred = []string{
	"prsindia.org",
	"pib.gov.in",
	"livelaw.in",
	"barandbench.com",
	"medianama.com",
	"orfonline.org",
	"thehindu.com",
	"indianexpress.com",
}

// governmentMarkers identify a government source by substring match against
// the source name or URL host.
var governmentMarkers = []string{
	".gov.in",
	".nic.in",
	"pib.gov",
	"rbi.org.in",
	"sebi.gov",
	"trai.gov",
	"irdai.gov",
	"cci.gov",
	"sansad.in",
	"parliament",
	"ministry",
	"niti aayog",
	"niti.gov",
	"reserve bank",
	"press information bureau",
	"lok sabha",
	"rajya sabha",
	"supreme court",
	"election commission",
	"comptroller and auditor",
}

// majorNewsMarkers identify mainstream outlets that publish with same-day
// timestamps; the date resolver uses a tighter no-date default for them.
var majorNewsMarkers = []string{
	"the hindu",
	"indian express",
	"economic times",
	"times of india",
	"hindustan times",
	"mint",
	"business standard",
	"ndtv",
	"india today",
	"reuters",
	"the print",
	"the wire",
	"scroll",
}

// Sources returns the full curated source list, in registry order.
func Sources() []core.Source {
	out := make([]core.Source, len(sources))
	copy(out, sources)
	return out
}

// Blacklist returns the blacklist substrings.
func Blacklist() []string {
	out := make([]string, len(blacklist))
	copy(out, blacklist)
	return out
}

// IsBlacklisted reports whether a source name matches any blacklist entry.
func IsBlacklisted(sourceName string) bool {
	name := strings.ToLower(sourceName)
	for _, b := range blacklist {
		if strings.Contains(name, b) {
			return true
		}
	}
	return false
}

// IsPreferred reports whether the source name or URL matches the preferred
// set.
func IsPreferred(s string) bool {
	lower := strings.ToLower(s)
	for _, p := range preferred {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// Preferred returns the preferred-source domains used for site-restricted
// search queries.
func Preferred() []string {
	out := make([]string, len(preferred))
	copy(out, preferred)
	return out
}

// IsGovernment reports whether the given source name or URL belongs to a
// government publisher.
func IsGovernment(nameOrURL string) bool {
	lower := strings.ToLower(nameOrURL)
	for _, m := range governmentMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// IsGovernmentHost reports whether the URL's host matches the government
// predicate. Used by the scheduler to pick the stricter concurrency bound.
func IsGovernmentHost(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Host)
	return strings.HasSuffix(host, ".gov.in") ||
		strings.HasSuffix(host, ".nic.in") ||
		strings.Contains(host, "sansad.in") ||
		strings.Contains(host, "rbi.org.in") ||
		IsGovernment(host)
}

// IsMajorNews reports whether the source is a mainstream outlet with
// reliable same-day publication timestamps.
func IsMajorNews(sourceName string) bool {
	lower := strings.ToLower(sourceName)
	for _, m := range majorNewsMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// SourceTypeOf classifies a source by its name and URL.
func SourceTypeOf(name, rawURL string) core.SourceType {
	if IsGovernment(name) || IsGovernment(rawURL) {
		return core.SourceGovernment
	}
	lower := strings.ToLower(name + " " + rawURL)
	switch {
	case strings.Contains(lower, "livelaw") || strings.Contains(lower, "barandbench") ||
		strings.Contains(lower, "bar and bench") || strings.Contains(lower, "scc") ||
		strings.Contains(lower, "legally"):
		return core.SourceLegal
	case strings.Contains(lower, "orfonline") || strings.Contains(lower, "cprindia") ||
		strings.Contains(lower, "takshashila") || strings.Contains(lower, "prsindia") ||
		strings.Contains(lower, "observer research") || strings.Contains(lower, "carnegie") ||
		strings.Contains(lower, "brookings") || strings.Contains(lower, "cuts"):
		return core.SourceThinkTank
	case strings.Contains(lower, ".edu") || strings.Contains(lower, ".ac.in") ||
		strings.Contains(lower, "university") || strings.Contains(lower, "institute of"):
		return core.SourceAcademic
	case strings.Contains(lower, "economic times") || strings.Contains(lower, "business standard") ||
		strings.Contains(lower, "livemint") || strings.Contains(lower, "mint") ||
		strings.Contains(lower, "moneycontrol") || strings.Contains(lower, "financial express") ||
		strings.Contains(lower, "bloomberg"):
		return core.SourceBusiness
	case IsMajorNews(name):
		return core.SourceNewsMedia
	}
	return core.SourceOther
}
