// Package govsites shapes requests for specific government hosts: header
// presets, referrer priming, session cookies, legacy-TLS tolerance and
// alternate-URL generation. A generic fallback handler covers any
// .gov.in/.nic.in/parliament host without a dedicated entry.
package govsites

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"policyradar/internal/httpclient"
	"policyradar/internal/registry"
)

// Handler adjusts a fetch request for one host family.
type Handler func(req *httpclient.Request)

// handlers is the dispatch table, keyed by host substring. First match wins.
var handlers = []struct {
	hostPart string
	handler  Handler
}{
	{"pib.gov.in", shapePIB},
	{"trai.gov.in", shapeTRAI},
	{"sebi.gov.in", shapeSEBI},
	{"rbi.org.in", shapeRBI},
	{"cci.gov.in", shapeCCI},
	{"meity.gov.in", shapeMeitY},
	{"mea.gov.in", shapeMEA},
	{"incometaxindia.gov.in", shapeASPPortal},
	{"epfindia.gov.in", shapeASPPortal},
}

// Shape applies the host handler for the request URL, falling back to the
// generic government handler for unmatched .gov.in/.nic.in/parliament hosts.
// Non-government URLs are returned untouched.
func Shape(req *httpclient.Request) {
	host := hostOf(req.URL)
	if host == "" {
		return
	}
	for _, entry := range handlers {
		if strings.Contains(host, entry.hostPart) {
			entry.handler(req)
			return
		}
	}
	if registry.IsGovernmentHost(req.URL) {
		shapeGenericGov(req)
	}
}

func shapePIB(req *httpclient.Request) {
	ensureHeaders(req)
	req.Headers["Referer"] = "https://pib.gov.in/indexd.aspx"
	req.Headers["Accept-Language"] = "en-IN,en;q=0.9,hi;q=0.8"
	req.Timeout = 90 * time.Second

	// Article permalinks frequently 404 behind the load balancer; the index
	// page carries the same releases.
	if strings.Contains(req.URL, "PressReleasePage.aspx") {
		req.URL = "https://pib.gov.in/AllReleasem.aspx"
	}
}

func shapeTRAI(req *httpclient.Request) {
	ensureHeaders(req)
	req.Headers["Referer"] = "https://www.trai.gov.in/"
	req.Headers["X-Requested-With"] = "XMLHttpRequest"
	req.Cookies["has_js"] = "1"
	req.Timeout = 75 * time.Second
}

func shapeSEBI(req *httpclient.Request) {
	ensureHeaders(req)
	req.Headers["Referer"] = "https://www.sebi.gov.in/"
	req.Headers["Accept"] = "application/rss+xml,application/xml;q=0.9,*/*;q=0.8"
	req.Timeout = 60 * time.Second
}

func shapeRBI(req *httpclient.Request) {
	ensureHeaders(req)
	req.Headers["Referer"] = "https://www.rbi.org.in/"
	// RBI's CDN rejects clients without an explicit Accept for XML feeds.
	if strings.HasSuffix(req.URL, ".xml") {
		req.Headers["Accept"] = "application/rss+xml,application/xml"
	}
	req.Timeout = 45 * time.Second
}

func shapeCCI(req *httpclient.Request) {
	ensureHeaders(req)
	req.Cookies["has_js"] = "1"
	req.Headers["Referer"] = "https://www.cci.gov.in/"
	req.Timeout = 75 * time.Second
}

func shapeMeitY(req *httpclient.Request) {
	ensureHeaders(req)
	req.Headers["Referer"] = "https://www.meity.gov.in/"
	req.Cookies["has_js"] = "1"
	req.Timeout = 60 * time.Second
}

func shapeMEA(req *httpclient.Request) {
	ensureHeaders(req)
	req.Headers["Referer"] = "https://www.mea.gov.in/"
	req.Headers["Accept-Language"] = "en-IN,en;q=0.9"
	req.Timeout = 60 * time.Second
}

// shapeASPPortal handles the legacy ASP.NET portals that insist on a
// session cookie being present, even a synthetic one.
func shapeASPPortal(req *httpclient.Request) {
	ensureHeaders(req)
	req.Cookies["ASP.NET_SessionId"] = syntheticSessionID()
	req.Headers["Referer"] = httpclient.Referer(req.URL)
	req.Timeout = 90 * time.Second
}

func shapeGenericGov(req *httpclient.Request) {
	ensureHeaders(req)
	req.Headers["Referer"] = httpclient.Referer(req.URL)
	req.Headers["Accept-Language"] = "en-IN,en;q=0.9,hi;q=0.8"
	if req.Timeout == 0 {
		req.Timeout = 75 * time.Second
	}
}

func ensureHeaders(req *httpclient.Request) {
	if req.Headers == nil {
		req.Headers = make(map[string]string)
	}
	if req.Cookies == nil {
		req.Cookies = make(map[string]string)
	}
}

// syntheticSessionID fabricates a 24-char ASP.NET session token.
func syntheticSessionID() string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz012345"
	b := make([]byte, 24)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}

// AlternateURLs generates candidate URLs to try when the primary endpoint
// 404s: common news-index paths plus the year-stamped archive variant some
// ministries use.
func AlternateURLs(rawURL string) []string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	base := u.Scheme + "://" + u.Host
	year := time.Now().Year()

	alts := []string{
		base + "/news",
		base + "/press-releases",
		base + "/whats-new",
		base + "/feed.xml",
		fmt.Sprintf("%s/archive/%d", base, year),
	}

	// Drop any candidate identical to the failing URL.
	out := alts[:0]
	for _, a := range alts {
		if a != rawURL {
			out = append(out, a)
		}
	}
	return out
}

// DelayRange returns the politeness delay bounds for a host: 3–5 s for
// high-security regulators, 2–3 s for other government hosts, 0.5–1.5 s
// elsewhere.
func DelayRange(rawURL string) (time.Duration, time.Duration) {
	host := hostOf(rawURL)
	for _, strict := range []string{"rbi.org.in", "sebi.gov.in", "trai.gov.in", "cci.gov.in", "irdai.gov.in"} {
		if strings.Contains(host, strict) {
			return 3 * time.Second, 5 * time.Second
		}
	}
	if registry.IsGovernmentHost(rawURL) {
		return 2 * time.Second, 3 * time.Second
	}
	return 500 * time.Millisecond, 1500 * time.Millisecond
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}
