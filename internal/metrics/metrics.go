package metrics

import (
	"sync"
	"time"
)

type endpointStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type dashboardStats struct {
	builds          int
	excludedLeagues int
	lastExcluded    int
}

// Recorder captures lightweight, in-memory metrics about league API calls and dashboard builds,
// mirrored to OpenTelemetry instruments when Setup enabled them.
type Recorder struct {
	mu                sync.Mutex
	stats             map[string]*endpointStats
	sessionRejections int
	dashboard         dashboardStats
	otel              *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*endpointStats),
		otel:  otel,
	}
}

// RecordUpstreamCall increments counters for a league API call and stores the last observed latency.
// endpoint is the route template (e.g. "GET /matches/league/{id}") so cardinality stays bounded.
func (r *Recorder) RecordUpstreamCall(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(endpoint)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamCall(endpoint, duration, err)
	}
}

// RecordSessionRejected counts a request refused because the session was invalid or lacked the admin role.
func (r *Recorder) RecordSessionRejected(reason string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.sessionRejections++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSessionRejected(reason)
	}
}

// RecordDashboardBuild tracks a dashboard aggregation and how many leagues it had to exclude.
func (r *Recorder) RecordDashboardBuild(duration time.Duration, excluded int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.dashboard.builds++
	r.dashboard.excludedLeagues += excluded
	r.dashboard.lastExcluded = excluded
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDashboardBuild(duration, excluded)
	}
}

// UpstreamCalls returns the total attempts recorded for an endpoint.
func (r *Recorder) UpstreamCalls(endpoint string) int {
	return r.Snapshot(endpoint).Calls
}

// UpstreamErrors returns the total failed attempts recorded for an endpoint.
func (r *Recorder) UpstreamErrors(endpoint string) int {
	return r.Snapshot(endpoint).Errors
}

// LastCallLatency returns the last recorded latency for an endpoint.
func (r *Recorder) LastCallLatency(endpoint string) time.Duration {
	return r.Snapshot(endpoint).LastCallLatency
}

// SessionRejections returns how many requests were refused for session reasons.
func (r *Recorder) SessionRejections() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessionRejections
}

// DashboardSnapshot is a copy of the dashboard build counters.
type DashboardSnapshot struct {
	Builds          int
	ExcludedLeagues int
	LastExcluded    int
}

// Dashboard returns the dashboard build counters.
func (r *Recorder) Dashboard() DashboardSnapshot {
	if r == nil {
		return DashboardSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return DashboardSnapshot{
		Builds:          r.dashboard.builds,
		ExcludedLeagues: r.dashboard.excludedLeagues,
		LastExcluded:    r.dashboard.lastExcluded,
	}
}

// Snapshot returns a copy of the current stats for the endpoint.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[endpoint]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

func (r *Recorder) ensureStatsLocked(endpoint string) *endpointStats {
	stats, ok := r.stats[endpoint]
	if !ok {
		stats = &endpointStats{}
		r.stats[endpoint] = stats
	}
	return stats
}
