// Package dates extracts publication dates for articles using a strategy
// chain: feed fields, DOM attributes, surrounding markup, title text and URL
// path patterns, validated against a freshness window, with a
// source-type-dependent default when everything fails.
package dates

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"policyradar/internal/core"
)

// Attribute names checked on the candidate element itself.
var dateAttrs = []string{"datetime", "data-date", "data-time", "data-published"}

// contextClass matches elements whose class hints at a date.
var contextClass = regexp.MustCompile(`(?i)date|time|published|created`)

var (
	// Title patterns: dd/mm/yyyy, yyyy/mm/dd, "02 Jan 2006", "Jan 02, 2006".
	reSlashDMY  = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	reSlashYMD  = regexp.MustCompile(`\b(\d{4})/(\d{1,2})/(\d{1,2})\b`)
	reDayMonth  = regexp.MustCompile(`\b(\d{1,2})\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?,?\s+(\d{4})\b`)
	reMonthDay  = regexp.MustCompile(`\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+(\d{1,2}),?\s+(\d{4})\b`)

	// URL patterns: /2024/05/17/, date=2024-05-17, 20240517, 2024-05-17.
	reURLPath  = regexp.MustCompile(`/(\d{4})/(\d{1,2})/(\d{1,2})/`)
	reURLQuery = regexp.MustCompile(`date=(\d{4})-(\d{2})-(\d{2})`)
	reURLCompact = regexp.MustCompile(`(?:^|\D)(20\d{2})(\d{2})(\d{2})(?:\D|$)`)
	reURLISO   = regexp.MustCompile(`\b(20\d{2})-(\d{2})-(\d{2})\b`)
)

// textLayouts are tried in order when parsing free-form date text.
var textLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006", // Indian convention: day first
	"2006/01/02",
	"02-01-2006",
	"02 Jan 2006",
	"02 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// Resolver resolves and validates article dates. Now is injectable for
// tests; zero value means time.Now.
type Resolver struct {
	Window time.Duration // freshness window; dates older than this are invalid
	Now    func() time.Time
}

// NewResolver returns a resolver with the standard 90-day window.
func NewResolver() *Resolver {
	return &Resolver{Window: 90 * 24 * time.Hour}
}

func (r *Resolver) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Resolve runs the strategy chain and returns the resolved date, the name of
// the strategy that produced it and whether it passed validation. sel may be
// nil for feed-born articles. A nil date with source "default" means the
// caller should use Default for the source type.
func (r *Resolver) Resolve(feedDate *time.Time, sel *goquery.Selection, title, rawURL string) (*time.Time, string) {
	if feedDate != nil {
		d := naive(*feedDate)
		if r.Valid(d) {
			return &d, "feed"
		}
		// A structured but stale date is authoritative: do not fall through
		// to weaker signals, reject instead.
		return &d, "feed"
	}

	if sel != nil {
		if d, ok := r.fromAttributes(sel); ok {
			return &d, "attribute"
		}
		if d, ok := r.fromContext(sel); ok {
			return &d, "context"
		}
	}
	if d, ok := r.fromTitle(title); ok {
		return &d, "title"
	}
	if d, ok := r.fromURL(rawURL); ok {
		return &d, "url"
	}
	return nil, "default"
}

// Valid reports whether d falls inside [now − window, now].
func (r *Resolver) Valid(d time.Time) bool {
	now := r.now()
	return !d.After(now) && now.Sub(d) <= r.Window
}

// Default supplies the no-date fallback: government portals publish same-day
// but omit machine-readable dates, so they get now − 12 h; major news gets
// now − 6 h; anything else is uncertain and gets now − 7 days.
func (r *Resolver) Default(sourceType core.SourceType, majorNews bool) time.Time {
	now := r.now()
	switch {
	case sourceType == core.SourceGovernment:
		return now.Add(-12 * time.Hour)
	case majorNews:
		return now.Add(-6 * time.Hour)
	default:
		return now.Add(-7 * 24 * time.Hour)
	}
}

// fromAttributes checks the element's own date-bearing attributes.
func (r *Resolver) fromAttributes(sel *goquery.Selection) (time.Time, bool) {
	for _, attr := range dateAttrs {
		if v, ok := sel.Attr(attr); ok {
			if d, ok := r.parseText(v); ok {
				return d, true
			}
		}
	}
	return time.Time{}, false
}

// fromContext walks up to three ancestors, then the element's siblings,
// looking for date-classed elements.
func (r *Resolver) fromContext(sel *goquery.Selection) (time.Time, bool) {
	node := sel
	for i := 0; i < 3; i++ {
		node = node.Parent()
		if node.Length() == 0 {
			break
		}
		if d, ok := r.fromDateClassed(node); ok {
			return d, true
		}
	}

	var found time.Time
	ok := false
	sel.Siblings().EachWithBreak(func(_ int, sib *goquery.Selection) bool {
		if class, _ := sib.Attr("class"); contextClass.MatchString(class) {
			if d, good := r.parseElement(sib); good {
				found, ok = d, true
				return false
			}
		}
		return true
	})
	return found, ok
}

// fromDateClassed scans a container for descendants with a date-like class.
func (r *Resolver) fromDateClassed(container *goquery.Selection) (time.Time, bool) {
	var found time.Time
	ok := false
	container.Find("[class]").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		class, _ := el.Attr("class")
		if !contextClass.MatchString(class) {
			return true
		}
		if d, good := r.parseElement(el); good {
			found, ok = d, true
			return false
		}
		return true
	})
	if ok {
		return found, true
	}
	// time elements carry dates without a telltale class
	container.Find("time").EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if d, good := r.parseElement(el); good {
			found, ok = d, true
			return false
		}
		return true
	})
	return found, ok
}

// parseElement tries an element's datetime attribute, then its text.
func (r *Resolver) parseElement(el *goquery.Selection) (time.Time, bool) {
	if v, has := el.Attr("datetime"); has {
		if d, ok := r.parseText(v); ok {
			return d, true
		}
	}
	return r.parseText(el.Text())
}

// fromTitle regexes the title for embedded dates.
func (r *Resolver) fromTitle(title string) (time.Time, bool) {
	if m := reSlashDMY.FindStringSubmatch(title); m != nil {
		if d, ok := r.parseText(m[1] + "/" + m[2] + "/" + m[3]); ok {
			return d, true
		}
	}
	if m := reSlashYMD.FindStringSubmatch(title); m != nil {
		if d, ok := r.parseText(m[1] + "/" + m[2] + "/" + m[3]); ok {
			return d, true
		}
	}
	if m := reDayMonth.FindString(title); m != "" {
		if d, ok := r.parseText(m); ok {
			return d, true
		}
	}
	if m := reMonthDay.FindString(title); m != "" {
		if d, ok := r.parseText(m); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

// fromURL regexes the URL path and query for date patterns.
func (r *Resolver) fromURL(rawURL string) (time.Time, bool) {
	for _, re := range []*regexp.Regexp{reURLPath, reURLQuery, reURLISO, reURLCompact} {
		if m := re.FindStringSubmatch(rawURL); m != nil {
			if d, ok := buildDate(m[1], m[2], m[3]); ok && r.Valid(d) {
				return d, true
			}
		}
	}
	return time.Time{}, false
}

// parseText parses a free-form date string against the known layouts and
// validates the result.
func (r *Resolver) parseText(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > 64 {
		return time.Time{}, false
	}
	for _, layout := range textLayouts {
		if d, err := time.ParseInLocation(layout, text, time.Local); err == nil {
			d = naive(d)
			if r.Valid(d) {
				return d, true
			}
		}
	}
	// Titles and context nodes embed dates in longer text; retry on the
	// first date-looking fragment.
	if m := reDayMonth.FindString(text); m != "" && m != text {
		return r.parseText(m)
	}
	if m := reMonthDay.FindString(text); m != "" && m != text {
		return r.parseText(m)
	}
	return time.Time{}, false
}

func buildDate(year, month, day string) (time.Time, bool) {
	d, err := time.ParseInLocation("2006-1-2", year+"-"+strings.TrimLeft(month, "0")+"-"+strings.TrimLeft(day, "0"), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// naive drops timezone information, normalizing to local wall-clock time.
func naive(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), d.Hour(), d.Minute(), d.Second(), 0, time.Local)
}
