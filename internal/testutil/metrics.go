package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elevenpool/league-console/internal/metrics"
)

// NewScrapedRecorder wires a recorder to a real Prometheus exporter and returns a function that
// scrapes it, so tests can assert on exported series names.
func NewScrapedRecorder(t testing.TB) (*metrics.Recorder, func() string) {
	t.Helper()
	rec, handler, shutdown, err := metrics.Setup(context.Background(), metrics.TelemetryConfig{Enabled: true, ServiceName: "league-console-test"})
	if err != nil {
		t.Fatalf("metrics setup: %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	scrape := func() string {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		return rr.Body.String()
	}
	return rec, scrape
}
