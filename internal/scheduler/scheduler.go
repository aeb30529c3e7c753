// Package scheduler drives the concurrent feed harvest: worker-pooled
// fetching with a stricter bound for government hosts, per-host politeness
// delays, health gating, fallback URLs and a global run budget.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"policyradar/internal/config"
	"policyradar/internal/core"
	"policyradar/internal/dedupe"
	"policyradar/internal/extract"
	"policyradar/internal/govsites"
	"policyradar/internal/health"
	"policyradar/internal/httpclient"
	"policyradar/internal/logger"
	"policyradar/internal/registry"
	"policyradar/internal/relevance"
)

// Recorder persists per-feed outcomes; satisfied by store.Store.
type Recorder interface {
	RecordFeedOutcome(url string, success bool, errMsg string) error
}

// Result bundles everything one harvest run produced.
type Result struct {
	Articles    []core.Article
	Stats       core.RunStats
	SourceStats map[string]*core.SourceStat
}

// Scheduler coordinates one harvest run.
type Scheduler struct {
	cfg       *config.Config
	client    *httpclient.Client
	extractor *extract.Extractor
	scorer    *relevance.Scorer
	monitor   *health.Monitor
	recorder  Recorder

	// Politeness is skipped when false; tests disable it.
	Polite bool
}

// New builds a Scheduler. recorder may be nil.
func New(cfg *config.Config, client *httpclient.Client, extractor *extract.Extractor, scorer *relevance.Scorer, monitor *health.Monitor, recorder Recorder) *Scheduler {
	return &Scheduler{
		cfg:       cfg,
		client:    client,
		extractor: extractor,
		scorer:    scorer,
		monitor:   monitor,
		recorder:  recorder,
		Polite:    true,
	}
}

// Run harvests every active source within the run budget and returns the
// deduplicated, relevance-filtered articles. The dedupe set is shared with
// later pipeline stages through the returned Result.
func (s *Scheduler) Run(ctx context.Context, sources []core.Source) *Result {
	log := logger.Get()

	runCtx, cancel := context.WithTimeout(ctx, s.cfg.Fetch.RunBudget)
	defer cancel()

	sources = s.eligible(sources)

	res := &Result{SourceStats: make(map[string]*core.SourceStat)}
	res.Stats.StartTime = time.Now()
	res.Stats.TotalFeeds = len(sources)

	var government, regular []core.Source
	for _, src := range sources {
		if registry.IsGovernment(src.Name) || registry.IsGovernmentHost(src.URL) {
			government = append(government, src)
		} else {
			regular = append(regular, src)
		}
	}
	log.Info().
		Int("government", len(government)).
		Int("regular", len(regular)).
		Msg("starting harvest")

	var mu sync.Mutex
	seen := dedupe.NewSet()
	govSem := semaphore.NewWeighted(int64(s.cfg.Fetch.GovConcurrency))

	g, gctx := errgroup.WithContext(runCtx)
	g.SetLimit(s.cfg.Fetch.Workers)

	for _, src := range regular {
		src := src
		g.Go(func() error {
			s.harvestSource(gctx, src, res, seen, &mu, nil)
			return nil
		})
	}
	for _, src := range government {
		src := src
		g.Go(func() error {
			s.harvestSource(gctx, src, res, seen, &mu, govSem)
			return nil
		})
	}

	// Workers never return errors; the only exit conditions are completion
	// and budget expiry.
	_ = g.Wait()

	res.Stats.EndTime = time.Now()
	if runCtx.Err() != nil {
		log.Warn().
			Dur("budget", s.cfg.Fetch.RunBudget).
			Msg("run budget expired, continuing with collected articles")
	}
	log.Info().
		Int("articles", len(res.Articles)).
		Int("successful_feeds", res.Stats.SuccessfulFeeds).
		Int("failed_feeds", res.Stats.FailedFeeds).
		Msg("harvest complete")
	return res
}

// eligible applies the blacklist, the health gate and the feed cap.
func (s *Scheduler) eligible(sources []core.Source) []core.Source {
	filtered := make([]core.Source, 0, len(sources))
	for _, src := range sources {
		if registry.IsBlacklisted(src.Name) {
			continue
		}
		filtered = append(filtered, src)
	}
	filtered = s.monitor.ActiveFeeds(filtered)
	if max := s.cfg.Pipeline.MaxFeeds; max > 0 && len(filtered) > max {
		filtered = filtered[:max]
	}
	return filtered
}

// harvestSource fetches one source (with fallbacks), extracts and scores its
// articles, and folds the outcome into the shared result.
func (s *Scheduler) harvestSource(ctx context.Context, src core.Source, res *Result, seen *dedupe.Set, mu *sync.Mutex, sem *semaphore.Weighted) {
	log := logger.Get()

	if sem != nil {
		if err := sem.Acquire(ctx, 1); err != nil {
			s.recordOutcome(src, res, mu, false, "timeout", 0)
			return
		}
		defer sem.Release(1)
	}
	if ctx.Err() != nil {
		s.recordOutcome(src, res, mu, false, "timeout", 0)
		return
	}

	s.politeDelay(ctx, src.URL)

	body, contentType, status, errKind, usedFallback := s.fetchWithFallbacks(ctx, src)
	if body == nil {
		log.Debug().Str("source", src.Name).Str("error", errKind).Msg("source failed")
		s.recordOutcome(src, res, mu, false, errKind, status)
		return
	}

	articles, rejected, err := s.extractor.Extract(body, contentType, src)
	if err != nil {
		log.Debug().Str("source", src.Name).Err(err).Msg("extraction failed")
		s.recordOutcome(src, res, mu, false, "unsupported_format", status)
		return
	}

	accepted := 0
	mu.Lock()
	if usedFallback {
		res.Stats.FallbackSuccesses++
	}
	res.Stats.FilteredArticles += rejected
	for i := range articles {
		a := articles[i]
		s.scorer.Score(&a)
		res.Stats.TotalArticles++
		if a.Scores.Overall < s.cfg.Pipeline.MinRelevance {
			res.Stats.LowRelevance++
			continue
		}
		if !s.cfg.Pipeline.Fresh && !seen.Add(&a) {
			res.Stats.DuplicateArticles++
			continue
		}
		res.Articles = append(res.Articles, a)
		accepted++
	}
	mu.Unlock()

	s.recordOutcome(src, res, mu, true, "", status)
	mu.Lock()
	res.SourceStats[src.Name].Articles = accepted
	mu.Unlock()
}

// fetchWithFallbacks tries the primary URL, then the registry fallbacks,
// then (for government hosts) the conventional alternate paths.
func (s *Scheduler) fetchWithFallbacks(ctx context.Context, src core.Source) (body []byte, contentType string, status int, errKind string, usedFallback bool) {
	candidates := []string{src.URL}
	candidates = append(candidates, src.Fallback...)
	if registry.IsGovernmentHost(src.URL) {
		candidates = append(candidates, govsites.AlternateURLs(src.URL)...)
	}

	for i, target := range candidates {
		if ctx.Err() != nil {
			return nil, "", status, "timeout", false
		}
		req := httpclient.Request{
			URL:     target,
			Headers: src.Headers,
			Cookies: src.Cookies,
		}
		govsites.Shape(&req)

		result, err := s.client.Fetch(ctx, req)
		if err != nil {
			errKind = errorKind(err)
			continue
		}
		status = result.StatusCode
		if !result.OK() {
			errKind = string(httpclient.ErrHTTPStatus)
			continue
		}
		return result.Body, result.ContentType, result.StatusCode, "", i > 0
	}
	if errKind == "" {
		errKind = string(httpclient.ErrConnection)
	}
	return nil, "", status, errKind, false
}

func errorKind(err error) string {
	var fe *httpclient.FetchError
	if errors.As(err, &fe) {
		return string(fe.Kind)
	}
	return string(httpclient.ErrConnection)
}

// recordOutcome updates run stats, per-source stats, the health monitor and
// the persistent feed history.
func (s *Scheduler) recordOutcome(src core.Source, res *Result, mu *sync.Mutex, success bool, errKind string, status int) {
	mu.Lock()
	stat, ok := res.SourceStats[src.Name]
	if !ok {
		stat = &core.SourceStat{}
		res.SourceStats[src.Name] = stat
	}
	stat.LastTime = time.Now()
	if success {
		res.Stats.SuccessfulFeeds++
		stat.LastStatus = fmt.Sprintf("%d", status)
	} else {
		res.Stats.FailedFeeds++
		stat.LastStatus = errKind
	}
	mu.Unlock()

	s.monitor.Update(src.URL, success, errKind)
	if s.recorder != nil {
		if err := s.recorder.RecordFeedOutcome(src.URL, success, errKind); err != nil {
			logger.Get().Warn().Str("source", src.Name).Err(err).Msg("failed to record feed outcome")
		}
	}
}

// politeDelay sleeps a duration sampled from the host's delay range.
func (s *Scheduler) politeDelay(ctx context.Context, rawURL string) {
	if !s.Polite {
		return
	}
	min, max := govsites.DelayRange(rawURL)
	d := min + time.Duration(rand.Int63n(int64(max-min)))
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
