package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/elevenpool/league-console/internal/auth"
	"github.com/elevenpool/league-console/internal/domain"
	"github.com/elevenpool/league-console/internal/domain/leagues"
	"github.com/elevenpool/league-console/internal/domain/matches"
	"github.com/elevenpool/league-console/internal/domain/players"
	"github.com/elevenpool/league-console/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingReader wraps a Reader with retry/backoff behavior. Writers are deliberately not wrapped.
type retryingReader struct {
	inner       Reader
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingReader wraps the given reader with retries on transient failures. If maxAttempts/backoff
// are <= 0, defaults are used.
func NewRetryingReader(inner Reader, logger *slog.Logger, maxAttempts int, backoff time.Duration) Reader {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingReader{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingReader) FetchLeagues(ctx context.Context, creds auth.Credentials) ([]leagues.League, error) {
	return withRetry(ctx, r, "leagues", func() ([]leagues.League, error) {
		return r.inner.FetchLeagues(ctx, creds)
	})
}

func (r *retryingReader) FetchPlayers(ctx context.Context, creds auth.Credentials) ([]players.Player, error) {
	return withRetry(ctx, r, "players", func() ([]players.Player, error) {
		return r.inner.FetchPlayers(ctx, creds)
	})
}

func (r *retryingReader) FetchLeagueMatches(ctx context.Context, creds auth.Credentials, leagueID domain.ID) ([]matches.Match, error) {
	return withRetry(ctx, r, "league_matches", func() ([]matches.Match, error) {
		return r.inner.FetchLeagueMatches(ctx, creds, leagueID)
	}, logging.FieldLeagueID, leagueID.String())
}

func (r *retryingReader) FetchOverdueMatches(ctx context.Context, creds auth.Credentials) ([]matches.Match, error) {
	return withRetry(ctx, r, "overdue_matches", func() ([]matches.Match, error) {
		return r.inner.FetchOverdueMatches(ctx, creds)
	})
}

func (r *retryingReader) FetchPlayerMatches(ctx context.Context, creds auth.Credentials, q PlayerMatchQuery) ([]matches.Match, error) {
	return withRetry(ctx, r, "player_matches", func() ([]matches.Match, error) {
		return r.inner.FetchPlayerMatches(ctx, creds, q)
	}, logging.FieldPlayerID, q.PlayerID.String())
}

func withRetry[T any](ctx context.Context, r *retryingReader, op string, fn func() (T, error), attrs ...any) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		out, err := fn()
		if err == nil {
			return out, nil
		}
		lastErr = err

		if attempt == r.maxAttempts || !retryable(err) {
			break
		}

		logDecorator(ctx, r.logger, slog.LevelWarn, "retrying", "league api read retry",
			append([]any{logging.FieldAction, op, logging.FieldAttempt, attempt, "max_attempts", r.maxAttempts, logging.FieldError, err}, attrs...)...)

		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}

	return zero, lastErr
}
