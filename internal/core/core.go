// Package core defines the domain model shared across the PolicyRadar
// pipeline: articles, sources, relevance scores and feed health records.
package core

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"
)

// SourceType classifies the publisher of a source.
type SourceType string

const (
	SourceGovernment SourceType = "government"
	SourceLegal      SourceType = "legal"
	SourceThinkTank  SourceType = "think_tank"
	SourceAcademic   SourceType = "academic"
	SourceBusiness   SourceType = "business"
	SourceNewsMedia  SourceType = "news_media"
	SourceOther      SourceType = "other"
)

// ContentType classifies the kind of document an article represents.
type ContentType string

const (
	ContentAnalysis     ContentType = "analysis"
	ContentNotification ContentType = "notification"
	ContentLegal        ContentType = "legal"
	ContentLegislation  ContentType = "legislation"
	ContentPolicy       ContentType = "policy"
	ContentReport       ContentType = "report"
	ContentInterview    ContentType = "interview"
	ContentNews         ContentType = "news"
)

// Sentinel categories used alongside the policy-sector tags.
const (
	CategoryPolicyNews   = "Policy News"
	CategoryGeneralNews  = "General News"
	CategoryNonPolicy    = "Non-Policy Content"
	CategorySystemNotice = "System Notice"
)

// RelevanceScores holds the five sub-scores computed by the classifier.
// All values lie in [0, 1].
type RelevanceScores struct {
	PolicyRelevance   float64 `json:"policy_relevance"`
	SourceReliability float64 `json:"source_reliability"`
	Recency           float64 `json:"recency"`
	SectorSpecificity float64 `json:"sector_specificity"`
	Overall           float64 `json:"overall"`
}

// Metadata carries secondary article attributes plus a small string map for
// forward-compatible fields.
type Metadata struct {
	SourceType  SourceType        `json:"source_type"`
	ContentType ContentType       `json:"content_type"`
	WordCount   int               `json:"word_count"`
	DateSource  string            `json:"date_source"` // "feed", "attribute", "context", "title", "url" or "default"
	DateValid   bool              `json:"date_valid"`
	Extra       map[string]string `json:"extra,omitempty"`
}

// Article is the unit of work moving through the pipeline.
type Article struct {
	Title         string          `json:"title"`
	URL           string          `json:"url"`
	Source        string          `json:"source"`
	Category      string          `json:"category"`
	PublishedDate *time.Time      `json:"published_date"` // naive local time; nil when unknown
	Summary       string          `json:"summary"`
	Content       string          `json:"content,omitempty"`
	Tags          []string        `json:"tags"`
	Keywords      []string        `json:"keywords"`
	Scores        RelevanceScores `json:"relevance_scores"`
	Metadata      Metadata        `json:"metadata"`
}

// ContentHash returns the stable identity of the article: md5 over the
// lowercased title concatenated with the lowercased URL. Equal (title, url)
// pairs hash identically across runs.
func (a *Article) ContentHash() string {
	return HashContent(a.Title, a.URL)
}

// StorageHash derives the store primary key from the content hash and the
// publication date, so snapshots of the same logical article from different
// days can coexist.
func (a *Article) StorageHash() string {
	date := ""
	if a.PublishedDate != nil {
		date = a.PublishedDate.Format("2006-01-02")
	}
	sum := md5.Sum([]byte(a.ContentHash() + date))
	return hex.EncodeToString(sum[:])
}

// Text returns the lowercased searchable text of the article: title, summary
// and content joined by single spaces. The classifier and tagger both operate
// on this view.
func (a *Article) Text() string {
	return strings.ToLower(a.Title + " " + a.Summary + " " + a.Content)
}

// HashContent computes the content fingerprint for a (title, url) pair.
func HashContent(title, url string) string {
	sum := md5.Sum([]byte(strings.ToLower(title) + strings.ToLower(url)))
	return hex.EncodeToString(sum[:])
}

// Source describes one registry entry: a feed endpoint with its display name
// and default category, plus optional request overrides.
type Source struct {
	Name     string            `json:"name"`
	URL      string            `json:"url"`
	Category string            `json:"category"`
	Headers  map[string]string `json:"headers,omitempty"`
	Cookies  map[string]string `json:"cookies,omitempty"`
	Fallback []string          `json:"fallback,omitempty"` // alternate URLs tried when the primary yields nothing
}

// FeedHealth tracks fetch outcomes for a single feed URL.
type FeedHealth struct {
	URL                 string     `json:"url"`
	TotalAttempts       int        `json:"total_attempts"`
	SuccessfulAttempts  int        `json:"successful_attempts"`
	ConsecutiveFailures int        `json:"consecutive_failures"`
	LastSuccess         *time.Time `json:"last_success"`
	LastFailure         *time.Time `json:"last_failure"`
	LastErrorType       string     `json:"last_error_type"`
	Active              bool       `json:"is_active"`
}

// Score returns the rolling health score: successes over attempts, with an
// attempt floor of one so an untried feed scores zero rather than dividing
// by zero.
func (h FeedHealth) Score() float64 {
	attempts := h.TotalAttempts
	if attempts < 1 {
		attempts = 1
	}
	return float64(h.SuccessfulAttempts) / float64(attempts)
}

// SourceStat records the per-source outcome of the current run.
type SourceStat struct {
	Articles   int    `json:"articles"`
	LastStatus string `json:"last_status"` // HTTP status code or error kind
	LastTime   time.Time
}

// RunStats aggregates counters for a single pipeline run.
type RunStats struct {
	TotalFeeds          int       `json:"total_feeds"`
	SuccessfulFeeds     int       `json:"successful_feeds"`
	FailedFeeds         int       `json:"failed_feeds"`
	TotalArticles       int       `json:"total_articles"`
	DuplicateArticles   int       `json:"duplicate_articles"`
	FilteredArticles    int       `json:"filtered_articles"`
	LowRelevance        int       `json:"low_relevance_articles"`
	FallbackSuccesses   int       `json:"fallback_successes"`
	GoogleNewsArticles  int       `json:"google_news_articles"`
	StartTime           time.Time `json:"start_time"`
	EndTime             time.Time `json:"end_time"`
}

// SuccessRate returns the share of feeds that produced a successful fetch,
// in [0, 1]. Zero feeds counts as fully successful so an empty run does not
// render a failure banner.
func (s *RunStats) SuccessRate() float64 {
	if s.TotalFeeds == 0 {
		return 1.0
	}
	return float64(s.SuccessfulFeeds) / float64(s.TotalFeeds)
}
