package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/elevenpool/league-console/internal/app/dashboard"
	"github.com/elevenpool/league-console/internal/auth"
	"github.com/elevenpool/league-console/internal/logging"
	"github.com/elevenpool/league-console/internal/metrics"
	"github.com/elevenpool/league-console/internal/store"
)

const defaultInterval = 30 * time.Second

// SummaryBuilder produces a dashboard summary.
type SummaryBuilder interface {
	Build(ctx context.Context, creds auth.Credentials) (dashboard.Summary, error)
}

// Poller rebuilds the dashboard summary on an interval and keeps the latest one in memory.
type Poller struct {
	builder  SummaryBuilder
	latest   *store.Latest[dashboard.Summary]
	creds    auth.Credentials
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	LastExcluded        int
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults. creds is the service identity used for every refresh.
func New(builder SummaryBuilder, latest *store.Latest[dashboard.Summary], creds auth.Credentials, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		builder:  builder,
		latest:   latest,
		creds:    creds,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial build to warm the dashboard on boot.
		p.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// refreshOnce builds one summary. A partial failure still publishes the summary; the excluded
// leagues are listed in it.
func (p *Poller) refreshOnce(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)

	summary, err := p.builder.Build(ctx, p.creds)
	partial, isPartial := dashboard.AsPartialFailure(err)
	if err != nil && !isPartial {
		p.metrics.RecordPollerCycle(time.Since(start), err)
		logging.Error(p.logger, "dashboard refresh failed", err, logging.FieldDurationMS, time.Since(start).Milliseconds())
		p.recordFailure(err, start)
		return
	}
	p.metrics.RecordPollerCycle(time.Since(start), nil)

	if p.latest != nil {
		p.latest.Set(summary, p.now())
	}
	excluded := len(partial.Excluded())
	p.recordSuccess(start, excluded)
	if excluded > 0 {
		logging.Warn(p.logger, "dashboard refreshed with excluded leagues", logging.FieldExcluded, excluded)
		return
	}
	logging.Info(p.logger, "dashboard refreshed",
		logging.FieldCount, summary.MatchesPlayed+summary.UpcomingMatches,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time, excluded int) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.status.LastExcluded = excluded
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
