// Package httpclient provides the resilient request layer used by every
// fetch in the pipeline: retries with backoff and jitter, a TLS configuration
// permissive enough for aging government sites, user-agent rotation, per-host
// connection caps and cookie-jar warming for hardened hosts.
package httpclient

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"
)

// ErrorKind classifies a fetch failure for the health monitor.
type ErrorKind string

const (
	ErrTimeout    ErrorKind = "timeout"
	ErrConnection ErrorKind = "connection"
	ErrTLS        ErrorKind = "tls"
	ErrHTTPStatus ErrorKind = "http_status"
)

// FetchError is the typed failure bubbled to the caller when a request could
// not produce any HTTP response.
type FetchError struct {
	Kind ErrorKind
	URL  string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Result is the outcome of a fetch. When retries are exhausted on a bad
// status, Result carries the last status and body rather than an error;
// callers inspect StatusCode.
type Result struct {
	StatusCode  int
	Header      http.Header
	Body        []byte
	FinalURL    string
	ContentType string
}

// OK reports whether the response carried a 2xx status.
func (r *Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Options configures a Client.
type Options struct {
	Timeout      time.Duration // default request timeout
	MaxRetries   int           // attempts per request
	BackoffBase  time.Duration // backoff = base * 1.5^attempt + jitter
	PerHostLimit int           // concurrent connections per host
	MaxBodySize  int64         // response body cap in bytes
	SimpleTLS    bool          // CI mode: default TLS stack, still unverified
}

// DefaultOptions returns the production settings: 60 s timeout, 5 attempts,
// 2 connections per host.
func DefaultOptions() Options {
	return Options{
		Timeout:      60 * time.Second,
		MaxRetries:   5,
		BackoffBase:  1 * time.Second,
		PerHostLimit: 2,
		MaxBodySize:  10 << 20,
	}
}

// retryStatuses are the HTTP statuses worth retrying with a rotated
// user agent.
var retryStatuses = map[int]bool{
	http.StatusForbidden:          true,
	http.StatusTooManyRequests:    true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:         true,
	http.StatusServiceUnavailable: true,
	http.StatusGatewayTimeout:     true,
}

// Client executes HTTP GETs with the retry and politeness behavior the
// Indian government web demands.
type Client struct {
	httpClient *http.Client
	opts       Options

	mu     sync.Mutex
	warmed map[string]bool // hosts whose cookie jar has been primed
	uaIdx  int
	rng    *rand.Rand
}

// New builds a Client. TLS verification is off and legacy cipher suites are
// accepted: the target ecosystem ships weak DH parameters and expired
// intermediates, and content correctness is validated downstream. The
// permissive mode applies to GETs only, which is all this client issues.
func New(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = 5
	}
	if opts.BackoffBase == 0 {
		opts.BackoffBase = time.Second
	}
	if opts.PerHostLimit == 0 {
		opts.PerHostLimit = 2
	}
	if opts.MaxBodySize == 0 {
		opts.MaxBodySize = 10 << 20
	}

	tlsConfig := &tls.Config{InsecureSkipVerify: true}
	if !opts.SimpleTLS {
		tlsConfig.MinVersion = tls.VersionTLS10
		tlsConfig.CipherSuites = legacyCipherSuites()
	}

	transport := &http.Transport{
		TLSClientConfig:     tlsConfig,
		MaxConnsPerHost:     opts.PerHostLimit,
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: opts.PerHostLimit,
		IdleConnTimeout:     90 * time.Second,
		Proxy:               http.ProxyFromEnvironment,
	}

	jar, _ := cookiejar.New(nil)

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Jar:       jar,
			Timeout:   opts.Timeout,
		},
		opts:   opts,
		warmed: make(map[string]bool),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// legacyCipherSuites returns the default suites plus the CBC suites old
// government middleware still negotiates.
func legacyCipherSuites() []uint16 {
	var ids []uint16
	for _, s := range tls.CipherSuites() {
		ids = append(ids, s.ID)
	}
	for _, s := range tls.InsecureCipherSuites() {
		ids = append(ids, s.ID)
	}
	return ids
}

// Request describes a single fetch.
type Request struct {
	URL     string
	Headers map[string]string
	Cookies map[string]string
	Timeout time.Duration // overrides the client default when non-zero
}

// Fetch executes a GET with retries. Retry-worthy statuses and transient
// network errors are retried up to MaxRetries times with exponential backoff
// and jitter; on exhaustion the last response is returned without error.
// Errors are returned only when no HTTP response was obtained at all.
func (c *Client) Fetch(ctx context.Context, req Request) (*Result, error) {
	if host := hostOf(req.URL); host != "" && isHardened(host) {
		c.warmHost(ctx, req.URL, host)
	}

	var lastResult *Result
	var lastErr error

	for attempt := 0; attempt < c.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.backoff(attempt)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, &FetchError{Kind: ErrTimeout, URL: req.URL, Err: ctx.Err()}
			}
		}

		result, err := c.doOnce(ctx, req)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return nil, err
			}
			continue
		}
		lastResult = result
		if !retryStatuses[result.StatusCode] {
			return result, nil
		}
	}

	if lastResult != nil {
		return lastResult, nil
	}
	return nil, lastErr
}

// doOnce issues one GET attempt with a freshly rotated user agent.
func (c *Client) doOnce(ctx context.Context, req Request) (*Result, error) {
	timeout := req.Timeout
	if timeout == 0 {
		timeout = c.opts.Timeout
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, &FetchError{Kind: ErrConnection, URL: req.URL, Err: err}
	}

	httpReq.Header.Set("User-Agent", c.nextUserAgent())
	httpReq.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,application/rss+xml;q=0.9,*/*;q=0.8")
	httpReq.Header.Set("Accept-Language", "en-IN,en;q=0.9,hi;q=0.8")
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	for name, value := range req.Cookies {
		httpReq.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyNetErr(req.URL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.opts.MaxBodySize))
	if err != nil {
		return nil, classifyNetErr(req.URL, err)
	}

	finalURL := req.URL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &Result{
		StatusCode:  resp.StatusCode,
		Header:      resp.Header,
		Body:        body,
		FinalURL:    finalURL,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

// warmHost primes the cookie jar for a hardened host: GET the site root,
// pause briefly like a human session, and let subsequent requests carry the
// collected cookies plus a same-origin referer.
func (c *Client) warmHost(ctx context.Context, rawURL, host string) {
	c.mu.Lock()
	if c.warmed[host] {
		c.mu.Unlock()
		return
	}
	c.warmed[host] = true
	c.mu.Unlock()

	u, err := url.Parse(rawURL)
	if err != nil {
		return
	}
	root := u.Scheme + "://" + u.Host + "/"

	rootReq, err := http.NewRequestWithContext(ctx, http.MethodGet, root, nil)
	if err != nil {
		return
	}
	rootReq.Header.Set("User-Agent", c.nextUserAgent())
	rootReq.Header.Set("Accept-Language", "en-IN,en;q=0.9")

	resp, err := c.httpClient.Do(rootReq)
	if err == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
		_ = resp.Body.Close()
	}

	c.sleepJittered(ctx, 2*time.Second, 4*time.Second)
}

// Referer returns the same-origin referer header value for a URL, used by
// the government site handlers after a warm-up.
func Referer(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Scheme + "://" + u.Host + "/"
}

func (c *Client) nextUserAgent() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ua := userAgents[c.uaIdx%len(userAgents)]
	c.uaIdx++
	return ua
}

// backoff computes base * 1.5^attempt plus up to one second of jitter.
func (c *Client) backoff(attempt int) time.Duration {
	base := float64(c.opts.BackoffBase) * math.Pow(1.5, float64(attempt))
	c.mu.Lock()
	jitter := c.rng.Float64()
	c.mu.Unlock()
	return time.Duration(base) + time.Duration(jitter*float64(time.Second))
}

func (c *Client) sleepJittered(ctx context.Context, min, max time.Duration) {
	c.mu.Lock()
	d := min + time.Duration(c.rng.Float64()*float64(max-min))
	c.mu.Unlock()
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}

func isHardened(host string) bool {
	for _, h := range hardenedHosts {
		if strings.HasSuffix(host, h) {
			return true
		}
	}
	return false
}

// classifyNetErr maps a transport error onto a FetchError kind.
func classifyNetErr(rawURL string, err error) *FetchError {
	var netErr net.Error
	switch {
	case errors.As(err, &netErr) && netErr.Timeout():
		return &FetchError{Kind: ErrTimeout, URL: rawURL, Err: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &FetchError{Kind: ErrTimeout, URL: rawURL, Err: err}
	case strings.Contains(err.Error(), "tls") || strings.Contains(err.Error(), "certificate"):
		return &FetchError{Kind: ErrTLS, URL: rawURL, Err: err}
	default:
		return &FetchError{Kind: ErrConnection, URL: rawURL, Err: err}
	}
}
