package govsites

import (
	"strings"
	"testing"
	"time"

	"policyradar/internal/httpclient"
)

func TestShape_PIB(t *testing.T) {
	req := &httpclient.Request{URL: "https://pib.gov.in/PressReleasePage.aspx?PRID=123"}
	Shape(req)
	if req.URL != "https://pib.gov.in/AllReleasem.aspx" {
		t.Errorf("PIB permalink should collapse to the index page, got %s", req.URL)
	}
	if req.Headers["Referer"] == "" {
		t.Error("PIB handler should set a referer")
	}
	if req.Timeout != 90*time.Second {
		t.Errorf("PIB timeout = %v, want 90s", req.Timeout)
	}
}

func TestShape_TRAI(t *testing.T) {
	req := &httpclient.Request{URL: "https://www.trai.gov.in/notifications/press-release"}
	Shape(req)
	if req.Cookies["has_js"] != "1" {
		t.Error("TRAI handler should inject has_js cookie")
	}
	if req.Headers["X-Requested-With"] != "XMLHttpRequest" {
		t.Error("TRAI handler should set X-Requested-With")
	}
}

func TestShape_ASPPortal(t *testing.T) {
	req := &httpclient.Request{URL: "https://incometaxindia.gov.in/Lists/Press%20Releases/AllItems.aspx"}
	Shape(req)
	sid := req.Cookies["ASP.NET_SessionId"]
	if len(sid) != 24 {
		t.Errorf("synthetic session id length = %d, want 24", len(sid))
	}
}

func TestShape_GenericGov(t *testing.T) {
	req := &httpclient.Request{URL: "https://mohfw.gov.in/media/press-releases"}
	Shape(req)
	if req.Headers["Referer"] != "https://mohfw.gov.in/" {
		t.Errorf("generic gov handler referer = %q", req.Headers["Referer"])
	}
}

func TestShape_NonGovUntouched(t *testing.T) {
	req := &httpclient.Request{URL: "https://www.medianama.com/feed/"}
	Shape(req)
	if len(req.Headers) != 0 || len(req.Cookies) != 0 {
		t.Error("non-government URLs must not be shaped")
	}
}

func TestAlternateURLs(t *testing.T) {
	alts := AlternateURLs("https://example.gov.in/old-page")
	if len(alts) < 4 {
		t.Fatalf("expected several alternates, got %d", len(alts))
	}
	wantPaths := []string{"/news", "/press-releases", "/whats-new", "/feed.xml"}
	for _, p := range wantPaths {
		found := false
		for _, a := range alts {
			if strings.HasSuffix(a, p) {
				found = true
			}
		}
		if !found {
			t.Errorf("alternates missing %s: %v", p, alts)
		}
	}
	for _, a := range alts {
		if a == "https://example.gov.in/old-page" {
			t.Error("alternates must not repeat the failing URL")
		}
	}
}

func TestDelayRange(t *testing.T) {
	min, max := DelayRange("https://www.rbi.org.in/pressreleases_rss.xml")
	if min != 3*time.Second || max != 5*time.Second {
		t.Errorf("regulator delay = [%v, %v], want [3s, 5s]", min, max)
	}
	min, max = DelayRange("https://mohfw.gov.in/media")
	if min != 2*time.Second || max != 3*time.Second {
		t.Errorf("government delay = [%v, %v], want [2s, 3s]", min, max)
	}
	min, max = DelayRange("https://www.medianama.com/feed/")
	if min != 500*time.Millisecond || max != 1500*time.Millisecond {
		t.Errorf("default delay = [%v, %v]", min, max)
	}
}
