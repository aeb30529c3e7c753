// Package dedupe rejects duplicate articles within a run and near-duplicates
// against recently stored rows.
package dedupe

import (
	"net/url"
	"strings"

	"policyradar/internal/core"
)

// Set tracks the three duplicate keys seen during one run: content hash,
// normalized URL and normalized title. Not safe for concurrent use; the
// scheduler serializes access.
type Set struct {
	hashes map[string]bool
	urls   map[string]bool
	titles map[string]bool
}

// NewSet returns an empty duplicate set.
func NewSet() *Set {
	return &Set{
		hashes: make(map[string]bool),
		urls:   make(map[string]bool),
		titles: make(map[string]bool),
	}
}

// Seen reports whether any of the article's three keys was already added.
func (s *Set) Seen(a *core.Article) bool {
	return s.hashes[a.ContentHash()] ||
		s.urls[NormalizeURL(a.URL)] ||
		s.titles[normalizeTitle(a.Title)]
}

// Add records the article's keys. Returns false when the article was
// already present.
func (s *Set) Add(a *core.Article) bool {
	if s.Seen(a) {
		return false
	}
	s.hashes[a.ContentHash()] = true
	s.urls[NormalizeURL(a.URL)] = true
	s.titles[normalizeTitle(a.Title)] = true
	return true
}

// Len returns the number of distinct articles added.
func (s *Set) Len() int {
	return len(s.hashes)
}

// NormalizeURL canonicalizes a URL for duplicate comparison: scheme and
// "www." are dropped, the host is lowercased, fragments and trailing
// slashes are removed.
func NormalizeURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return strings.TrimRight(strings.ToLower(strings.TrimSpace(raw)), "/")
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	path := strings.TrimRight(u.Path, "/")
	out := host + path
	if u.RawQuery != "" {
		out += "?" + u.RawQuery
	}
	return out
}

func normalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

// Jaccard returns the word-set similarity of two titles in [0, 1].
func Jaccard(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	intersection := 0
	for w := range setA {
		if setB[w] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]bool {
	out := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		out[strings.Trim(w, ".,;:!?\"'()[]")] = true
	}
	delete(out, "")
	return out
}

// Key is the (url, title) pair of a previously stored article.
type Key struct {
	URL   string
	Title string
}

// RecentlySimilar reports whether the candidate matches any recently stored
// row: same normalized URL, or title Jaccard similarity above 0.8.
func RecentlySimilar(a *core.Article, recent []Key) bool {
	normURL := NormalizeURL(a.URL)
	for _, k := range recent {
		if NormalizeURL(k.URL) == normURL {
			return true
		}
		if Jaccard(a.Title, k.Title) > 0.8 {
			return true
		}
	}
	return false
}
