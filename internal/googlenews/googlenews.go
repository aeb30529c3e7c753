// Package googlenews augments the regular feed harvest with curated policy
// queries against the Google News RSS search endpoint.
package googlenews

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"time"

	"policyradar/internal/core"
	"policyradar/internal/extract"
	"policyradar/internal/httpclient"
	"policyradar/internal/logger"
	"policyradar/internal/registry"
	"policyradar/internal/relevance"
)

const (
	endpoint       = "https://news.google.com/rss/search"
	maxPerQuery    = 15
	minOverall     = 0.2
	defaultMaxHits = 150
)

// queries is the curated policy query set: general, sector-specific, and a
// handful of site: queries over preferred publishers appended at runtime.
var queries = []string{
	"india policy announcement",
	"india government notification",
	"india cabinet decision",
	"parliament bill india",
	"supreme court india ruling",
	"rbi monetary policy",
	"sebi regulation",
	"trai telecom regulation",
	"india data protection rules",
	"meity it rules",
	"india budget policy",
	"gst council decision",
	"india fdi policy",
	"india environment ministry clearance",
	"india health ministry policy",
	"national education policy india",
	"india agriculture msp policy",
	"india defence procurement policy",
	"india foreign policy agreement",
	"niti aayog report",
	"india labour code",
	"india renewable energy policy",
	"competition commission india order",
}

// Augmentor pulls Google News results through the normal extract and
// relevance path.
type Augmentor struct {
	client    *httpclient.Client
	extractor *extract.Extractor
	scorer    *relevance.Scorer
	maxHits   int

	// Endpoint is the RSS search base URL; overridable in tests.
	Endpoint string

	// sleep between queries; injectable for tests.
	sleep func(ctx context.Context)
}

// New builds an Augmentor. maxHits caps the total accepted articles across
// all queries; zero means the default of 150.
func New(client *httpclient.Client, extractor *extract.Extractor, scorer *relevance.Scorer, maxHits int) *Augmentor {
	if maxHits <= 0 {
		maxHits = defaultMaxHits
	}
	return &Augmentor{
		client:    client,
		extractor: extractor,
		scorer:    scorer,
		maxHits:   maxHits,
		Endpoint:  endpoint,
		sleep: func(ctx context.Context) {
			d := 500*time.Millisecond + time.Duration(rand.Int63n(int64(500*time.Millisecond)))
			select {
			case <-ctx.Done():
			case <-time.After(d):
			}
		},
	}
}

// Queries returns the full query list, including site: queries derived from
// the preferred-source hosts.
func Queries() []string {
	out := make([]string, len(queries))
	copy(out, queries)
	for _, host := range registry.Preferred() {
		out = append(out, fmt.Sprintf("site:%s policy", host))
		if len(out) >= len(queries)+5 {
			break
		}
	}
	return out
}

// QueryURL builds the RSS search URL for one query.
func QueryURL(query string) string {
	return queryURL(endpoint, query)
}

func queryURL(base, query string) string {
	v := url.Values{}
	v.Set("q", query)
	v.Set("hl", "en-IN")
	v.Set("gl", "IN")
	v.Set("ceid", "IN:en")
	return base + "?" + v.Encode()
}

// Run executes every query and returns the scored, relevance-filtered
// articles. Individual query failures are logged and skipped.
func (g *Augmentor) Run(ctx context.Context) []core.Article {
	log := logger.Get()
	var out []core.Article

	for i, query := range Queries() {
		if ctx.Err() != nil {
			break
		}
		if len(out) >= g.maxHits {
			break
		}
		if i > 0 {
			g.sleep(ctx)
		}

		articles, err := g.runQuery(ctx, query)
		if err != nil {
			log.Warn().Str("query", query).Err(err).Msg("google news query failed")
			continue
		}
		remaining := g.maxHits - len(out)
		if len(articles) > remaining {
			articles = articles[:remaining]
		}
		out = append(out, articles...)
	}

	log.Info().Int("articles", len(out)).Msg("google news augmentation complete")
	return out
}

func (g *Augmentor) runQuery(ctx context.Context, query string) ([]core.Article, error) {
	target := queryURL(g.Endpoint, query)
	res, err := g.client.Fetch(ctx, httpclient.Request{URL: target})
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, fmt.Errorf("google news returned status %d", res.StatusCode)
	}

	source := core.Source{
		Name:     "Google News",
		URL:      target,
		Category: core.CategoryPolicyNews,
	}
	candidates, _, err := g.extractor.Extract(res.Body, res.ContentType, source)
	if err != nil {
		return nil, fmt.Errorf("failed to extract results: %w", err)
	}

	var accepted []core.Article
	for i := range candidates {
		if len(accepted) >= maxPerQuery {
			break
		}
		a := candidates[i]
		g.scorer.Score(&a)
		if a.Scores.Overall < minOverall {
			continue
		}
		accepted = append(accepted, a)
	}
	return accepted, nil
}
