package server

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestNetHTTPServerListenAndServeStopsOnShutdown(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	s := netHTTPServer{srv: srv}
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	time.Sleep(50 * time.Millisecond)
	_ = srv.Shutdown(context.Background())

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatalf("listen did not return after shutdown")
	}
}

func TestNetHTTPServerAccessors(t *testing.T) {
	handler := http.NewServeMux()
	srv := &http.Server{Addr: ":1234", Handler: handler}
	s := netHTTPServer{srv: srv}

	if s.Addr() != ":1234" {
		t.Fatalf("expected addr passthrough")
	}
	if s.Handler() != handler {
		t.Fatalf("expected handler passthrough")
	}
	_ = s.Shutdown(context.Background())
}

func TestServerConstructorsApplyTimeouts(t *testing.T) {
	handler := http.NewServeMux()

	api := newAPIServer(":4000", handler)
	if api.srv.WriteTimeout != writeTimeout || api.srv.ReadHeaderTimeout != readHeaderTimeout {
		t.Fatalf("expected api server timeouts, got write=%s header=%s", api.srv.WriteTimeout, api.srv.ReadHeaderTimeout)
	}
	if api.Addr() != ":4000" {
		t.Fatalf("unexpected api addr %s", api.Addr())
	}

	scrape := newScrapeServer(":9090", handler)
	if scrape.srv.WriteTimeout != 0 {
		t.Fatalf("expected scrape server without write timeout")
	}
	if scrape.srv.ReadHeaderTimeout != readHeaderTimeout {
		t.Fatalf("expected scrape server header timeout")
	}
}

func TestStatusSourceWithoutPoller(t *testing.T) {
	if statusSource(nil) != nil {
		t.Fatalf("expected nil status source without poller")
	}
}
