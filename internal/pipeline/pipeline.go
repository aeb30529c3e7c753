// Package pipeline orchestrates a full PolicyRadar run: harvest, augment,
// rank, persist and render, with graceful degradation when everything fails.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"policyradar/internal/config"
	"policyradar/internal/core"
	"policyradar/internal/dates"
	"policyradar/internal/dedupe"
	"policyradar/internal/extract"
	"policyradar/internal/googlenews"
	"policyradar/internal/health"
	"policyradar/internal/httpclient"
	"policyradar/internal/logger"
	"policyradar/internal/ranker"
	"policyradar/internal/registry"
	"policyradar/internal/relevance"
	"policyradar/internal/render"
	"policyradar/internal/scheduler"
	"policyradar/internal/store"
)

const cacheFileName = "articles_cache.json"

// Pipeline wires every stage together for one process lifetime.
type Pipeline struct {
	cfg       *config.Config
	client    *httpclient.Client
	extractor *extract.Extractor
	scorer    *relevance.Scorer
	monitor   *health.Monitor
	ranker    *ranker.Ranker
	renderer  *render.Renderer
	store     *store.Store
	augmentor *googlenews.Augmentor
	runID     string
}

// New assembles a Pipeline from configuration. The store is opened (and its
// schema initialized) here.
func New(cfg *config.Config) (*Pipeline, error) {
	if err := cfg.EnsureDirs(); err != nil {
		return nil, err
	}

	st, err := store.NewStore(cfg.App.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	mirrorSources(st)

	client := httpclient.New(httpclient.Options{
		Timeout:      cfg.Fetch.Timeout,
		MaxRetries:   cfg.Fetch.MaxRetries,
		BackoffBase:  cfg.Fetch.BackoffBase,
		PerHostLimit: cfg.Fetch.PerHostLimit,
		SimpleTLS:    cfg.App.CI,
	})
	resolver := dates.NewResolver()
	if days := cfg.Pipeline.FreshnessDays; days > 0 {
		resolver.Window = time.Duration(days) * 24 * time.Hour
	}
	extractor := extract.New(resolver, cfg.Pipeline.MaxPerFeed, cfg.Pipeline.MaxPerPage)
	scorer := relevance.NewScorer()
	monitor := health.NewMonitor(cfg.Health.FailureThreshold, time.Duration(cfg.Health.RetryAfterHours)*time.Hour)

	if records, err := st.LoadFeedHealth(); err == nil {
		monitor.Seed(records)
	} else {
		logger.Get().Warn().Err(err).Msg("failed to load feed health, starting clean")
	}

	return &Pipeline{
		cfg:       cfg,
		client:    client,
		extractor: extractor,
		scorer:    scorer,
		monitor:   monitor,
		ranker:    ranker.New(),
		renderer:  render.New(),
		store:     st,
		augmentor: googlenews.New(client, extractor, scorer, cfg.Pipeline.MaxGoogleNews),
		runID:     uuid.New().String(),
	}, nil
}

// Close releases the store.
func (p *Pipeline) Close() error {
	return p.store.Close()
}

// mirrorSources refreshes the sources table from the registry so queries and
// exports against the database see the current source set.
func mirrorSources(st *store.Store) {
	for _, src := range registry.Sources() {
		if err := st.UpsertSource(src); err != nil {
			logger.Get().Warn().Str("source", src.Name).Err(err).Msg("failed to mirror source registry")
			return
		}
	}
}

// Run executes one full collection cycle. It always tries to leave usable
// artifacts behind and reserves errors for failures to write them.
func (p *Pipeline) Run(ctx context.Context) error {
	log := logger.Get()
	log.Info().Str("run_id", p.runID).Msg("starting run")

	sched := scheduler.New(p.cfg, p.client, p.extractor, p.scorer, p.monitor, p.store)
	res := sched.Run(ctx, registry.Sources())

	p.augment(ctx, res)

	articles := res.Articles
	if len(articles) == 0 {
		articles = p.fallbackArticles()
	}

	p.ranker.Rank(articles)
	if filter := p.cfg.Output.Filter; filter != "" {
		before := len(articles)
		articles = filterCategory(articles, filter)
		log.Info().
			Str("category", filter).
			Int("removed", before-len(articles)).
			Msg("category filter applied to output")
	}

	if len(res.Articles) > 0 {
		if n, err := p.store.SaveArticles(res.Articles); err != nil {
			log.Error().Err(err).Msg("failed to persist articles")
		} else {
			log.Info().Int("saved", n).Msg("articles persisted")
		}
		p.writeCache(res.Articles)
	}

	if err := p.renderArtifacts(articles, &res.Stats); err != nil {
		return err
	}

	if err := p.store.SaveFeedHealth(p.monitor.Snapshot()); err != nil {
		log.Warn().Err(err).Msg("failed to persist feed health")
	}
	if days := p.cfg.Pipeline.RetentionDays; days > 0 {
		if n, err := p.store.Prune(time.Duration(days) * 24 * time.Hour); err == nil && n > 0 {
			log.Info().Int64("pruned", n).Msg("old articles removed")
		}
	}

	p.logStats(&res.Stats)
	if p.cfg.App.Debug {
		p.writeDebugReport(res)
	}
	return nil
}

// augment folds Google News results into the run, deduplicating against the
// harvest and against the last two days of stored articles.
func (p *Pipeline) augment(ctx context.Context, res *scheduler.Result) {
	log := logger.Get()

	extra := p.augmentor.Run(ctx)
	if len(extra) == 0 {
		return
	}

	seen := dedupe.NewSet()
	for i := range res.Articles {
		seen.Add(&res.Articles[i])
	}

	var recent []dedupe.Key
	if keys, err := p.store.RecentArticleKeys(48 * time.Hour); err == nil {
		for _, k := range keys {
			recent = append(recent, dedupe.Key{URL: k.URL, Title: k.Title})
		}
	}

	added := 0
	for i := range extra {
		a := extra[i]
		if !p.cfg.Pipeline.Fresh {
			if !seen.Add(&a) {
				res.Stats.DuplicateArticles++
				continue
			}
			if dedupe.RecentlySimilar(&a, recent) {
				res.Stats.DuplicateArticles++
				continue
			}
		}
		res.Articles = append(res.Articles, a)
		added++
	}
	res.Stats.GoogleNewsArticles = added
	res.Stats.TotalArticles += len(extra)
	log.Info().Int("added", added).Msg("google news articles merged")
}

// fallbackArticles implements the degradation chain for an empty run:
// yesterday's cache first, then a system notice placeholder.
func (p *Pipeline) fallbackArticles() []core.Article {
	log := logger.Get()

	if cached := p.loadCache(); len(cached) > 0 {
		log.Warn().Int("articles", len(cached)).Msg("run produced nothing, serving cached articles")
		return cached
	}

	log.Error().Msg("run produced nothing and no cache exists, emitting service notice")
	return []core.Article{render.SystemNotice(
		"No sources could be reached during the latest update. " +
			"The previous edition may be outdated; a fresh update will be attempted shortly.",
	)}
}

func (p *Pipeline) cachePath() string {
	return filepath.Join(p.cfg.App.CacheDir, cacheFileName)
}

// writeCache saves the successful article set, moving the previous cache
// into backup/ first.
func (p *Pipeline) writeCache(articles []core.Article) {
	log := logger.Get()

	if prev, err := os.ReadFile(p.cachePath()); err == nil {
		backup := filepath.Join(
			p.cfg.App.BackupDir,
			fmt.Sprintf("articles_cache_%s.json", time.Now().Format("20060102_150405")),
		)
		if err := os.WriteFile(backup, prev, 0644); err != nil {
			log.Warn().Err(err).Msg("failed to back up article cache")
		}
	}

	raw, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		log.Warn().Err(err).Msg("failed to encode article cache")
		return
	}
	if err := os.WriteFile(p.cachePath(), raw, 0644); err != nil {
		log.Warn().Err(err).Msg("failed to write article cache")
	}
}

func (p *Pipeline) loadCache() []core.Article {
	raw, err := os.ReadFile(p.cachePath())
	if err != nil {
		return nil
	}
	var articles []core.Article
	if err := json.Unmarshal(raw, &articles); err != nil {
		logger.Get().Warn().Err(err).Msg("article cache is corrupt, ignoring")
		return nil
	}
	return articles
}

func (p *Pipeline) renderArtifacts(articles []core.Article, stats *core.RunStats) error {
	siteDir := p.cfg.Output.SiteDir
	indexPath := p.cfg.Output.IndexPath
	if indexPath == "" {
		indexPath = filepath.Join(siteDir, "index.html")
	}

	if err := p.renderer.RenderIndex(indexPath, articles, stats); err != nil {
		return fmt.Errorf("failed to render index: %w", err)
	}
	if err := p.renderer.RenderHealth(filepath.Join(siteDir, "health.html"), p.monitor.Report()); err != nil {
		return fmt.Errorf("failed to render health dashboard: %w", err)
	}
	if err := p.renderer.RenderAbout(filepath.Join(siteDir, "about.html")); err != nil {
		return fmt.Errorf("failed to render about page: %w", err)
	}
	if p.cfg.Output.Export {
		if err := p.renderer.ExportJSON(filepath.Join(siteDir, "api_data.json"), articles); err != nil {
			return fmt.Errorf("failed to export JSON: %w", err)
		}
	}
	return nil
}

func (p *Pipeline) logStats(stats *core.RunStats) {
	logger.Get().Info().
		Int("total_feeds", stats.TotalFeeds).
		Int("successful_feeds", stats.SuccessfulFeeds).
		Int("failed_feeds", stats.FailedFeeds).
		Int("total_articles", stats.TotalArticles).
		Int("duplicates", stats.DuplicateArticles).
		Int("low_relevance", stats.LowRelevance).
		Int("fallback_successes", stats.FallbackSuccesses).
		Int("google_news", stats.GoogleNewsArticles).
		Float64("success_rate", stats.SuccessRate()).
		Dur("elapsed", stats.EndTime.Sub(stats.StartTime)).
		Msg("run statistics")
}

// writeDebugReport dumps per-source outcomes for offline inspection.
func (p *Pipeline) writeDebugReport(res *scheduler.Result) {
	path := filepath.Join(p.cfg.App.LogDir, fmt.Sprintf("debug_report_%s.txt", p.runID))

	var b []byte
	b = append(b, fmt.Sprintf("run %s\n", p.runID)...)
	b = append(b, fmt.Sprintf("start %s\nend %s\n\n", res.Stats.StartTime.Format(time.RFC3339), res.Stats.EndTime.Format(time.RFC3339))...)
	b = append(b, "source outcomes:\n"...)
	for name, stat := range res.SourceStats {
		b = append(b, fmt.Sprintf("  %-50s %-12s articles=%d\n", name, stat.LastStatus, stat.Articles)...)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		logger.Get().Warn().Err(err).Msg("failed to write debug report")
	}
}

// Search prints the top stored articles matching the query, newest first.
func (p *Pipeline) Search(query string, limit int) ([]core.Article, error) {
	if limit <= 0 {
		limit = 10
	}
	days := p.cfg.Pipeline.FreshnessDays
	if days <= 0 {
		days = 90
	}
	articles, err := p.store.RecentArticles(time.Duration(days)*24*time.Hour, 1000)
	if err != nil {
		return nil, fmt.Errorf("failed to search store: %w", err)
	}

	var out []core.Article
	needle := strings.ToLower(query)
	for _, a := range articles {
		if len(out) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(a.Title), needle) ||
			strings.Contains(strings.ToLower(a.Summary), needle) {
			out = append(out, a)
		}
	}
	return out, nil
}

// TestFeed fetches and extracts a single feed, for the --test flow.
func (p *Pipeline) TestFeed(ctx context.Context, url string) ([]core.Article, error) {
	res, err := p.client.Fetch(ctx, httpclient.Request{URL: url})
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, fmt.Errorf("feed returned status %d", res.StatusCode)
	}
	source := core.Source{Name: "Test Feed", URL: url, Category: core.CategoryPolicyNews}
	articles, _, err := p.extractor.Extract(res.Body, res.ContentType, source)
	if err != nil {
		return nil, err
	}
	for i := range articles {
		p.scorer.Score(&articles[i])
	}
	return articles, nil
}

// ClearCache removes the article cache file and prunes stored articles past
// the retention window.
func (p *Pipeline) ClearCache() error {
	if err := os.Remove(p.cachePath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cache: %w", err)
	}
	days := p.cfg.Pipeline.RetentionDays
	if days <= 0 {
		days = 90
	}
	if _, err := p.store.Prune(time.Duration(days) * 24 * time.Hour); err != nil {
		return err
	}
	return nil
}

// filterCategory returns a new slice so the caller's full article set stays
// intact for persistence and caching.
func filterCategory(articles []core.Article, category string) []core.Article {
	out := make([]core.Article, 0, len(articles))
	for _, a := range articles {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}
