package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func testOptions() Options {
	return Options{
		Timeout:      5 * time.Second,
		MaxRetries:   3,
		BackoffBase:  time.Millisecond,
		PerHostLimit: 2,
		MaxBodySize:  1 << 20,
	}
}

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("request should carry a user agent")
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte("<rss></rss>"))
	}))
	defer srv.Close()

	c := New(testOptions())
	res, err := c.Fetch(context.Background(), Request{URL: srv.URL})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !res.OK() {
		t.Errorf("status = %d, want 2xx", res.StatusCode)
	}
	if string(res.Body) != "<rss></rss>" {
		t.Errorf("body = %q", res.Body)
	}
	if res.ContentType != "application/rss+xml" {
		t.Errorf("content type = %q", res.ContentType)
	}
}

func TestFetch_RetriesOn503(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := New(testOptions())
	res, err := c.Fetch(context.Background(), Request{URL: srv.URL})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200 after retries", res.StatusCode)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("server saw %d calls, want 3", got)
	}
}

func TestFetch_ExhaustionReturnsLastResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("blocked"))
	}))
	defer srv.Close()

	c := New(testOptions())
	res, err := c.Fetch(context.Background(), Request{URL: srv.URL})
	if err != nil {
		t.Fatalf("exhausted retries must not error when a response exists: %v", err)
	}
	if res.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want 403", res.StatusCode)
	}
	if string(res.Body) != "blocked" {
		t.Errorf("body = %q, want last body", res.Body)
	}
}

func TestFetch_NoRetryOn404(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(testOptions())
	res, err := c.Fetch(context.Background(), Request{URL: srv.URL})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", res.StatusCode)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("404 should not be retried, server saw %d calls", got)
	}
}

func TestFetch_ConnectionError(t *testing.T) {
	c := New(testOptions())
	// Port 1 is never listening.
	_, err := c.Fetch(context.Background(), Request{URL: "http://127.0.0.1:1/feed"})
	if err == nil {
		t.Fatal("expected a typed error for a refused connection")
	}
	fetchErr, ok := err.(*FetchError)
	if !ok {
		t.Fatalf("error type = %T, want *FetchError", err)
	}
	if fetchErr.Kind != ErrConnection && fetchErr.Kind != ErrTimeout {
		t.Errorf("error kind = %s", fetchErr.Kind)
	}
}

func TestFetch_CustomHeadersAndCookies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Requested-With") != "XMLHttpRequest" {
			t.Error("custom header not forwarded")
		}
		if c, err := r.Cookie("has_js"); err != nil || c.Value != "1" {
			t.Error("cookie not forwarded")
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := New(testOptions())
	_, err := c.Fetch(context.Background(), Request{
		URL:     srv.URL,
		Headers: map[string]string{"X-Requested-With": "XMLHttpRequest"},
		Cookies: map[string]string{"has_js": "1"},
	})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
}

func TestBackoff_Grows(t *testing.T) {
	c := New(Options{BackoffBase: 100 * time.Millisecond, MaxRetries: 5, Timeout: time.Second, PerHostLimit: 1, MaxBodySize: 1})
	b1 := c.backoff(1)
	b3 := c.backoff(3)
	// Jitter adds at most one second on top of the base term.
	if b3 < b1-time.Second {
		t.Errorf("backoff should grow with attempts: attempt1=%v attempt3=%v", b1, b3)
	}
	if b1 < 150*time.Millisecond {
		t.Errorf("attempt 1 backoff %v below base*1.5", b1)
	}
}

func TestReferer(t *testing.T) {
	if got := Referer("https://pib.gov.in/RssMain.aspx?ModId=6"); got != "https://pib.gov.in/" {
		t.Errorf("Referer = %q", got)
	}
}
