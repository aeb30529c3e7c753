// Package health tracks per-feed fetch outcomes and gates unhealthy feeds
// out of the schedule. The monitor is in-memory; the pipeline seeds it from
// the store at startup and flushes it back after the run.
package health

import (
	"sort"
	"sync"
	"time"

	"policyradar/internal/core"
)

// Monitor keeps one record per feed URL. Safe for concurrent use.
type Monitor struct {
	mu               sync.Mutex
	feeds            map[string]*core.FeedHealth
	failureThreshold int
	retryAfter       time.Duration

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

// Report summarizes the monitor state for the health dashboard.
type Report struct {
	Total     int
	Active    int
	Healthy   int // score >= 0.8
	Unhealthy int // score < 0.3
	AvgScore  float64
	Worst     []core.FeedHealth // up to 20, lowest score first
}

// NewMonitor returns a monitor that deactivates a feed after
// failureThreshold consecutive failures and lets it retry once retryAfter
// has elapsed since the last failure.
func NewMonitor(failureThreshold int, retryAfter time.Duration) *Monitor {
	return &Monitor{
		feeds:            make(map[string]*core.FeedHealth),
		failureThreshold: failureThreshold,
		retryAfter:       retryAfter,
	}
}

func (m *Monitor) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// Seed loads previously persisted records, replacing any in-memory state
// for the same URLs.
func (m *Monitor) Seed(records []core.FeedHealth) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range records {
		r := rec
		m.feeds[r.URL] = &r
	}
}

// Update records one fetch outcome. Success resets the consecutive-failure
// counter and reactivates the feed; failure increments it and deactivates
// the feed once the threshold is reached.
func (m *Monitor) Update(url string, success bool, errorType string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.feeds[url]
	if !ok {
		rec = &core.FeedHealth{URL: url, Active: true}
		m.feeds[url] = rec
	}

	now := m.now()
	rec.TotalAttempts++
	if success {
		rec.SuccessfulAttempts++
		rec.ConsecutiveFailures = 0
		rec.LastSuccess = &now
		rec.LastErrorType = ""
		rec.Active = true
		return
	}

	rec.ConsecutiveFailures++
	rec.LastFailure = &now
	rec.LastErrorType = errorType
	if rec.ConsecutiveFailures >= m.failureThreshold {
		rec.Active = false
	}
}

// ActiveFeeds filters sources down to those worth fetching: unknown feeds
// pass, inactive feeds pass only once the retry-after window has elapsed
// since their last failure.
func (m *Monitor) ActiveFeeds(sources []core.Source) []core.Source {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	out := make([]core.Source, 0, len(sources))
	for _, src := range sources {
		rec, ok := m.feeds[src.URL]
		if !ok || rec.Active {
			out = append(out, src)
			continue
		}
		if rec.LastFailure == nil || now.Sub(*rec.LastFailure) >= m.retryAfter {
			out = append(out, src)
		}
	}
	return out
}

// Report computes dashboard aggregates over all tracked feeds.
func (m *Monitor) Report() Report {
	m.mu.Lock()
	defer m.mu.Unlock()

	rep := Report{Total: len(m.feeds)}
	if rep.Total == 0 {
		return rep
	}

	all := make([]core.FeedHealth, 0, len(m.feeds))
	sum := 0.0
	for _, rec := range m.feeds {
		all = append(all, *rec)
		score := rec.Score()
		sum += score
		if rec.Active {
			rep.Active++
		}
		if score >= 0.8 {
			rep.Healthy++
		}
		if score < 0.3 {
			rep.Unhealthy++
		}
	}
	rep.AvgScore = sum / float64(rep.Total)

	sort.Slice(all, func(i, j int) bool {
		si, sj := all[i].Score(), all[j].Score()
		if si != sj {
			return si < sj
		}
		return all[i].URL < all[j].URL
	})
	if len(all) > 20 {
		all = all[:20]
	}
	rep.Worst = all
	return rep
}

// Snapshot returns a copy of every record for persistence.
func (m *Monitor) Snapshot() []core.FeedHealth {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]core.FeedHealth, 0, len(m.feeds))
	for _, rec := range m.feeds {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].URL < out[j].URL })
	return out
}
