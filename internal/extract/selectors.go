package extract

// SiteSelector describes how to pull article candidates out of one site's
// HTML. The cascade tries the matching site entry first, then the generic
// selectors, then heading-anchored links, then keyword links.
type SiteSelector struct {
	HostPattern string // substring matched against the page host
	Container   string // selector for the repeating item block
	Title       string // selector for the title inside the container
	Summary     string // selector for the summary inside the container, may be empty
	Link        string // selector for the anchor inside the container
}

// siteSelectors is the per-site rules table. Expressed as data so it can be
// tested and extended without touching the cascade.
var siteSelectors = []SiteSelector{
	{HostPattern: "pib.gov.in", Container: "ul.num li", Title: "a", Link: "a"},
	{HostPattern: "meity.gov.in", Container: ".view-content .views-row", Title: ".views-field-title a", Summary: ".views-field-body", Link: ".views-field-title a"},
	{HostPattern: "cci.gov.in", Container: ".press-release-listing li", Title: "a", Link: "a"},
	{HostPattern: "prsindia.org", Container: ".view-content .views-row", Title: "h3 a", Summary: ".field-content p", Link: "h3 a"},
	{HostPattern: "livelaw.in", Container: ".news-card", Title: "h2 a", Summary: ".news-card-excerpt", Link: "h2 a"},
	{HostPattern: "barandbench.com", Container: ".story-card", Title: "h2 a", Summary: ".story-card__summary", Link: "h2 a"},
	{HostPattern: "thehindu.com", Container: ".element", Title: "h3 a", Summary: ".intro", Link: "h3 a"},
	{HostPattern: "indianexpress.com", Container: ".articles .title", Title: "a", Link: "a"},
	{HostPattern: "economictimes.indiatimes.com", Container: ".eachStory", Title: "h3 a", Summary: "p", Link: "h3 a"},
	{HostPattern: "livemint.com", Container: ".listingNew .headline", Title: "a", Link: "a"},
	{HostPattern: "medianama.com", Container: "article", Title: "h2 a", Summary: ".entry-summary", Link: "h2 a"},
	{HostPattern: "internetfreedom.in", Container: "article.post-card", Title: "h2 a", Summary: ".post-card-excerpt", Link: "h2 a"},
}

// genericSelectors is tried in decreasing specificity when no site entry
// matches.
var genericSelectors = []string{
	"article h2 a",
	"article h3 a",
	"article a",
	".news-item a",
	".article-title a",
	".post-title a",
	".entry-title a",
	".headline a",
	"h2 a",
	"h3 a",
	"ul.news li a",
	".view-content a",
}

// linkKeywords drive the last-resort pass on pure-text pages: anchors whose
// href or text contains one of these are treated as candidates.
var linkKeywords = []string{
	"press",
	"release",
	"news",
	"notification",
	"circular",
	"update",
	"announcement",
}

// entertainmentMarkers reject consumer-tech, lifestyle, gaming and celebrity
// URLs before they reach scoring.
var entertainmentMarkers = []string{
	"/wearables/news/",
	"/gadgets/",
	"gadgets360.com",
	"/htcity/",
	"/entertainment/",
	"/bollywood/",
	"/celebrity/",
	"/celebs/",
	"/movie-review",
	"/web-series/",
	"/television/",
	"/gaming/",
	"pokemon-",
	"/astrology/",
	"/horoscope",
	"/lifestyle/",
	"/fashion/",
	"/food-wine/",
	"/travel-tourism/",
	"/cricket/",
	"/sports/",
	"/ipl-",
	"/viral-",
	"/recipes/",
}
