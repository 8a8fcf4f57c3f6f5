package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/elevenpool/league-console/internal/http/requestutil"
	"github.com/elevenpool/league-console/internal/providers"
)

const flushTimeout = 2 * time.Second

// Config controls error reporting. An empty DSN disables it.
type Config struct {
	DSN         string
	Environment string
	Release     string
	ServiceName string
}

// Reporter sends failed league API mutations to Sentry. A nil *Reporter is a no-op.
type Reporter struct {
	hub *sentry.Hub
}

// New returns a Reporter for cfg, or nil when no DSN is configured.
func New(cfg Config) (*Reporter, error) {
	if cfg.DSN == "" {
		return nil, nil
	}
	env := cfg.Environment
	if env == "" {
		env = "development"
	}
	return newReporter(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      env,
		Release:          cfg.Release,
		AttachStacktrace: true,
		Tags:             map[string]string{"service": cfg.ServiceName},
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			return scrub(event)
		},
	})
}

func newReporter(opts sentry.ClientOptions) (*Reporter, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("sentry client: %w", err)
	}
	return &Reporter{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

// MutationFailed reports err from a write against the league API. Expired sessions are not
// reported; they are user state, not faults.
func (r *Reporter) MutationFailed(ctx context.Context, action string, err error, tags map[string]string) {
	if r == nil || err == nil || errors.Is(err, providers.ErrSessionInvalid) {
		return
	}
	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("action", action)
		if id := requestutil.RequestIDFromContext(ctx); id != "" {
			scope.SetTag("request_id", id)
		}
		if nErr, ok := providers.AsNetworkError(err); ok {
			scope.SetTag("upstream_path", nErr.Path)
			scope.SetTag("upstream_status", fmt.Sprint(nErr.StatusCode))
		}
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		r.hub.CaptureException(err)
	})
}

// Flush waits for buffered events to be delivered.
func (r *Reporter) Flush() bool {
	if r == nil {
		return true
	}
	return r.hub.Flush(flushTimeout)
}

// scrub drops credentials before an event leaves the process.
func scrub(event *sentry.Event) *sentry.Event {
	if event == nil {
		return nil
	}
	event.User.IPAddress = ""
	if event.Request != nil {
		for k := range event.Request.Headers {
			switch k {
			case "Authorization", "Cookie", "X-Api-Key":
				event.Request.Headers[k] = "[redacted]"
			}
		}
	}
	return event
}
