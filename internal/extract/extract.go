// Package extract turns fetched bytes into candidate articles. It
// format-detects RSS/Atom/JSON-feed vs HTML, parses feeds tolerantly, and
// for HTML applies a cascade of site-specific, generic, heading-anchored and
// keyword-link selectors.
package extract

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"policyradar/internal/core"
	"policyradar/internal/dates"
	"policyradar/internal/registry"
	"policyradar/internal/relevance"
)

// ErrUnsupportedFormat marks a body that could not be parsed in any format.
var ErrUnsupportedFormat = errors.New("extract: unsupported content format")

const (
	minTitleLength = 10
	maxSummaryLen  = 500
)

// controlChars strips the stray control characters real-world feeds embed.
var controlChars = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F]`)

// xmlDeclRe fixes incorrect XML declarations (wrong quoting, leading junk).
var xmlDeclRe = regexp.MustCompile(`^[^<]*<\?xml[^?]*\?>`)

// Extractor converts fetched bodies into articles.
type Extractor struct {
	resolver   *gofeed.Parser
	dates      *dates.Resolver
	maxPerFeed int
	maxPerPage int
}

// New builds an Extractor with the given per-feed and per-page caps.
func New(dateResolver *dates.Resolver, maxPerFeed, maxPerPage int) *Extractor {
	if maxPerFeed <= 0 {
		maxPerFeed = 20
	}
	if maxPerPage <= 0 {
		maxPerPage = 30
	}
	return &Extractor{
		resolver:   gofeed.NewParser(),
		dates:      dateResolver,
		maxPerFeed: maxPerFeed,
		maxPerPage: maxPerPage,
	}
}

// Extract parses body according to its detected format and returns candidate
// articles for the source, along with the number of candidates rejected for
// content reasons (stale dates, entertainment sections, boilerplate titles).
// Feed and JSON parse failures fall through to the HTML path on the same body.
func (e *Extractor) Extract(body []byte, contentType string, source core.Source) ([]core.Article, int, error) {
	switch detectFormat(body, contentType) {
	case formatFeed:
		articles, filtered, err := e.fromFeed(body, source)
		if err == nil && len(articles) > 0 {
			return articles, filtered, nil
		}
		htmlArticles, htmlFiltered, htmlErr := e.fromHTML(body, source)
		return htmlArticles, filtered + htmlFiltered, htmlErr
	case formatJSON:
		articles, filtered, err := e.fromJSON(body, source)
		if err == nil && len(articles) > 0 {
			return articles, filtered, nil
		}
		htmlArticles, htmlFiltered, htmlErr := e.fromHTML(body, source)
		return htmlArticles, filtered + htmlFiltered, htmlErr
	default:
		return e.fromHTML(body, source)
	}
}

type format int

const (
	formatHTML format = iota
	formatFeed
	formatJSON
)

// detectFormat picks the parse path from the body prefix and declared
// content type.
func detectFormat(body []byte, contentType string) format {
	trimmed := bytes.TrimLeft(body, " \t\r\n\ufeff")
	ct := strings.ToLower(contentType)

	switch {
	case bytes.HasPrefix(trimmed, []byte("<?xml")),
		bytes.HasPrefix(trimmed, []byte("<rss")),
		bytes.HasPrefix(trimmed, []byte("<feed")):
		return formatFeed
	case strings.Contains(ct, "xml"), strings.Contains(ct, "rss"), strings.Contains(ct, "atom"):
		return formatFeed
	case bytes.HasPrefix(trimmed, []byte("{")), bytes.HasPrefix(trimmed, []byte("[")):
		return formatJSON
	case strings.Contains(ct, "json"):
		return formatJSON
	}
	return formatHTML
}

// fromFeed parses an RSS/Atom/JSON-feed document, scrubbing control
// characters and re-parsing once on failure.
func (e *Extractor) fromFeed(body []byte, source core.Source) ([]core.Article, int, error) {
	text := string(body)
	feed, err := e.resolver.ParseString(text)
	if err != nil {
		scrubbed := controlChars.ReplaceAllString(text, "")
		scrubbed = xmlDeclRe.ReplaceAllString(scrubbed, `<?xml version="1.0" encoding="UTF-8"?>`)
		feed, err = e.resolver.ParseString(scrubbed)
		if err != nil {
			return nil, 0, err
		}
	}

	var articles []core.Article
	filtered := 0
	for _, item := range feed.Items {
		if len(articles) >= e.maxPerFeed {
			break
		}
		var published *time.Time
		if item.PublishedParsed != nil {
			published = item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = item.UpdatedParsed
		}

		summary := item.Description
		if summary == "" && item.Content != "" {
			summary = item.Content
		}

		switch a, why := e.buildArticle(item.Title, item.Link, summary, published, nil, "", source); why {
		case accepted:
			articles = append(articles, a)
		case rejectedContent:
			filtered++
		}
	}
	return articles, filtered, nil
}

// looseJSONFeed is the shape of the ad-hoc JSON feeds some portals serve.
type looseJSONFeed struct {
	Items    []looseJSONItem `json:"items"`
	Articles []looseJSONItem `json:"articles"`
	Posts    []looseJSONItem `json:"posts"`
	Entries  []looseJSONItem `json:"entries"`
}

type looseJSONItem struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Link        string `json:"link"`
	Href        string `json:"href"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Excerpt     string `json:"excerpt"`
	Published   string `json:"published"`
	PubDate     string `json:"pubDate"`
	Date        string `json:"date"`
}

// fromJSON handles loose JSON feeds; well-formed JSON Feed documents were
// already accepted by the gofeed universal parser on the feed path.
func (e *Extractor) fromJSON(body []byte, source core.Source) ([]core.Article, int, error) {
	var doc looseJSONFeed
	if err := json.Unmarshal(body, &doc); err != nil {
		// Maybe a bare array of items.
		var items []looseJSONItem
		if err2 := json.Unmarshal(body, &items); err2 != nil {
			return nil, 0, err
		}
		doc.Items = items
	}

	items := doc.Items
	for _, alt := range [][]looseJSONItem{doc.Articles, doc.Posts, doc.Entries} {
		if len(items) == 0 {
			items = alt
		}
	}

	var articles []core.Article
	filtered := 0
	for _, item := range items {
		if len(articles) >= e.maxPerFeed {
			break
		}
		link := item.URL
		if link == "" {
			link = item.Link
		}
		if link == "" {
			link = item.Href
		}
		summary := item.Summary
		if summary == "" {
			summary = item.Description
		}
		if summary == "" {
			summary = item.Excerpt
		}
		var published *time.Time
		for _, raw := range []string{item.Published, item.PubDate, item.Date} {
			if raw == "" {
				continue
			}
			if d, err := parseFlexibleDate(raw); err == nil {
				published = &d
				break
			}
		}
		switch a, why := e.buildArticle(item.Title, link, summary, published, nil, "", source); why {
		case accepted:
			articles = append(articles, a)
		case rejectedContent:
			filtered++
		}
	}
	return articles, filtered, nil
}

func parseFlexibleDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, time.RFC1123Z, time.RFC1123, "2006-01-02 15:04:05", "2006-01-02"} {
		if d, err := time.Parse(layout, raw); err == nil {
			return d, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}

// fromHTML applies the selector cascade to an HTML page. The reject tally is
// the one from the pass whose articles are returned; when every pass comes up
// empty, the largest per-pass tally is reported so a page of all-rejected
// candidates is counted once rather than per pass.
func (e *Extractor) fromHTML(body []byte, source core.Source) ([]core.Article, int, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, 0, ErrUnsupportedFormat
	}

	pageHost := hostOf(source.URL)
	maxFiltered := 0

	// 1. Site-specific selectors.
	for _, site := range siteSelectors {
		if !strings.Contains(pageHost, site.HostPattern) {
			continue
		}
		if articles, filtered := e.bySiteSelector(doc, site, source); len(articles) > 0 {
			return articles, filtered, nil
		} else if filtered > maxFiltered {
			maxFiltered = filtered
		}
	}

	// 2. Generic selectors, decreasing specificity.
	for _, selector := range genericSelectors {
		if articles, filtered := e.byAnchorSelector(doc, selector, source); len(articles) > 0 {
			return articles, filtered, nil
		} else if filtered > maxFiltered {
			maxFiltered = filtered
		}
	}

	// 3. Heading-anchored links.
	if articles, filtered := e.byAnchorSelector(doc, "h1 a, h2 a, h3 a", source); len(articles) > 0 {
		return articles, filtered, nil
	} else if filtered > maxFiltered {
		maxFiltered = filtered
	}

	// 4. Keyword links on pure-text pages.
	articles, filtered := e.byKeywordLinks(doc, source)
	if len(articles) > 0 {
		return articles, filtered, nil
	}
	if filtered > maxFiltered {
		maxFiltered = filtered
	}
	return nil, maxFiltered, nil
}

func (e *Extractor) bySiteSelector(doc *goquery.Document, site SiteSelector, source core.Source) ([]core.Article, int) {
	var articles []core.Article
	filtered := 0
	seen := make(map[string]bool)

	doc.Find(site.Container).Each(func(_ int, container *goquery.Selection) {
		if len(articles) >= e.maxPerPage {
			return
		}
		titleSel := container.Find(site.Title).First()
		linkSel := container.Find(site.Link).First()
		title := strings.TrimSpace(titleSel.Text())
		href, _ := linkSel.Attr("href")

		summary := ""
		if site.Summary != "" {
			summary = strings.TrimSpace(container.Find(site.Summary).First().Text())
		}

		link := resolveURL(source.URL, href)
		if link == "" || seen[link] {
			return
		}
		switch a, why := e.buildArticle(title, link, summary, nil, linkSel, "", source); why {
		case accepted:
			seen[link] = true
			articles = append(articles, a)
		case rejectedContent:
			filtered++
		}
	})
	return articles, filtered
}

func (e *Extractor) byAnchorSelector(doc *goquery.Document, selector string, source core.Source) ([]core.Article, int) {
	var articles []core.Article
	filtered := 0
	seen := make(map[string]bool)

	doc.Find(selector).Each(func(_ int, anchor *goquery.Selection) {
		if len(articles) >= e.maxPerPage {
			return
		}
		title := strings.TrimSpace(anchor.Text())
		href, _ := anchor.Attr("href")
		link := resolveURL(source.URL, href)
		if link == "" || seen[link] {
			return
		}
		switch a, why := e.buildArticle(title, link, "", nil, anchor, "", source); why {
		case accepted:
			seen[link] = true
			articles = append(articles, a)
		case rejectedContent:
			filtered++
		}
	})
	return articles, filtered
}

func (e *Extractor) byKeywordLinks(doc *goquery.Document, source core.Source) ([]core.Article, int) {
	var articles []core.Article
	filtered := 0
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, anchor *goquery.Selection) {
		if len(articles) >= e.maxPerPage {
			return
		}
		title := strings.TrimSpace(anchor.Text())
		href, _ := anchor.Attr("href")
		haystack := strings.ToLower(href + " " + title)

		matched := false
		for _, kw := range linkKeywords {
			if strings.Contains(haystack, kw) {
				matched = true
				break
			}
		}
		if !matched {
			return
		}

		link := resolveURL(source.URL, href)
		if link == "" || seen[link] {
			return
		}
		switch a, why := e.buildArticle(title, link, "", nil, anchor, "", source); why {
		case accepted:
			seen[link] = true
			articles = append(articles, a)
		case rejectedContent:
			filtered++
		}
	})
	return articles, filtered
}

// rejection says what buildArticle did with a candidate. Junk rejections
// (unusable titles or links) are noise; content rejections (entertainment
// sections, boilerplate titles, stale dates) are counted as filtered.
type rejection int

const (
	accepted rejection = iota
	rejectedJunk
	rejectedContent
)

// buildArticle validates a candidate and assembles the Article, resolving
// its date through the strategy chain.
func (e *Extractor) buildArticle(title, link, summary string, published *time.Time, sel *goquery.Selection, content string, source core.Source) (core.Article, rejection) {
	title = strings.TrimSpace(title)
	if len(title) < minTitleLength {
		return core.Article{}, rejectedJunk
	}
	if !isAbsoluteHTTP(link) {
		return core.Article{}, rejectedJunk
	}
	if isEntertainmentURL(link) {
		return core.Article{}, rejectedContent
	}

	sourceType := registry.SourceTypeOf(source.Name, source.URL)
	if relevance.IsOrganizational(title) {
		return core.Article{}, rejectedContent
	}

	summary = stripHTML(summary)
	if len(summary) > maxSummaryLen {
		cut := maxSummaryLen
		for cut > 0 && !utf8.RuneStart(summary[cut]) {
			cut--
		}
		summary = summary[:cut]
	}

	resolved, dateSource := e.dates.Resolve(published, sel, title, link)
	dateValid := resolved != nil && e.dates.Valid(*resolved)
	if resolved != nil && !dateValid {
		// A resolved-but-stale date means the item is old, not undated.
		return core.Article{}, rejectedContent
	}
	if resolved == nil {
		d := e.dates.Default(sourceType, registry.IsMajorNews(source.Name))
		resolved = &d
		dateSource = "default"
		dateValid = true
	}

	words := len(strings.Fields(title + " " + summary + " " + content))

	return core.Article{
		Title:         title,
		URL:           link,
		Source:        source.Name,
		Category:      source.Category,
		PublishedDate: resolved,
		Summary:       summary,
		Content:       content,
		Metadata: core.Metadata{
			SourceType:  sourceType,
			ContentType: contentTypeOf(title, summary),
			WordCount:   words,
			DateSource:  dateSource,
			DateValid:   dateValid,
		},
	}, accepted
}

// contentTypeOf classifies the document kind from its title and summary.
func contentTypeOf(title, summary string) core.ContentType {
	text := strings.ToLower(title + " " + summary)
	switch {
	case containsAny(text, "notification", "circular", "office memorandum", "public notice"):
		return core.ContentNotification
	case containsAny(text, "bill", "act,", "ordinance", "amendment act", "passed by"):
		return core.ContentLegislation
	case containsAny(text, "judgment", "judgement", "court rules", "verdict", "tribunal", "high court", "supreme court"):
		return core.ContentLegal
	case containsAny(text, "report", "study finds", "survey", "white paper", "working paper"):
		return core.ContentReport
	case containsAny(text, "interview", "in conversation with", "q&a"):
		return core.ContentInterview
	case containsAny(text, "analysis", "explained", "opinion", "deep dive", "why "):
		return core.ContentAnalysis
	case containsAny(text, "policy", "scheme", "guideline", "regulation", "framework"):
		return core.ContentPolicy
	}
	return core.ContentNews
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// isEntertainmentURL rejects consumer-tech, lifestyle, gaming and celebrity
// sections by substring.
func isEntertainmentURL(link string) bool {
	lower := strings.ToLower(link)
	for _, marker := range entertainmentMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// resolveURL makes href absolute against the page URL; empty when it cannot
// be resolved.
func resolveURL(pageURL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return ref.String()
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

func isAbsoluteHTTP(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// stripHTML flattens markup in feed summaries to plain text.
func stripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(strings.Join(strings.Fields(doc.Text()), " "))
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}
