package providers

import (
	"context"
	"log/slog"

	"github.com/elevenpool/league-console/internal/auth"
	"github.com/elevenpool/league-console/internal/domain"
	"github.com/elevenpool/league-console/internal/domain/leagues"
	"github.com/elevenpool/league-console/internal/domain/matches"
	"github.com/elevenpool/league-console/internal/domain/players"
)

const defaultMaxConcurrency = 4

// limitedReader bounds how many reads are in flight against the league API at once.
type limitedReader struct {
	next   Reader
	slots  chan struct{}
	logger *slog.Logger
}

// NewLimitedReader returns a Reader that allows at most max concurrent calls to next.
// Calls block until a slot frees up or ctx is done.
func NewLimitedReader(next Reader, max int, logger *slog.Logger) Reader {
	if max <= 0 {
		max = defaultMaxConcurrency
	}
	return &limitedReader{
		next:   next,
		slots:  make(chan struct{}, max),
		logger: logger,
	}
}

func (p *limitedReader) acquire(ctx context.Context) error {
	if p == nil || p.next == nil {
		if p != nil {
			logDecorator(ctx, p.logger, slog.LevelWarn, "limited", "league api unavailable")
		}
		return ErrProviderUnavailable
	}
	select {
	case p.slots <- struct{}{}:
		return nil
	default:
	}
	logDecorator(ctx, p.logger, slog.LevelDebug, "limited", "league api read queued", "in_flight", cap(p.slots))
	select {
	case <-ctx.Done():
		logDecorator(ctx, p.logger, slog.LevelWarn, "limited", "queued league api read canceled")
		return ctx.Err()
	case p.slots <- struct{}{}:
		return nil
	}
}

func (p *limitedReader) release() {
	<-p.slots
}

func (p *limitedReader) FetchLeagues(ctx context.Context, creds auth.Credentials) ([]leagues.League, error) {
	if err := p.acquire(ctx); err != nil {
		return nil, err
	}
	defer p.release()
	return p.next.FetchLeagues(ctx, creds)
}

func (p *limitedReader) FetchPlayers(ctx context.Context, creds auth.Credentials) ([]players.Player, error) {
	if err := p.acquire(ctx); err != nil {
		return nil, err
	}
	defer p.release()
	return p.next.FetchPlayers(ctx, creds)
}

func (p *limitedReader) FetchLeagueMatches(ctx context.Context, creds auth.Credentials, leagueID domain.ID) ([]matches.Match, error) {
	if err := p.acquire(ctx); err != nil {
		return nil, err
	}
	defer p.release()
	return p.next.FetchLeagueMatches(ctx, creds, leagueID)
}

func (p *limitedReader) FetchOverdueMatches(ctx context.Context, creds auth.Credentials) ([]matches.Match, error) {
	if err := p.acquire(ctx); err != nil {
		return nil, err
	}
	defer p.release()
	return p.next.FetchOverdueMatches(ctx, creds)
}

func (p *limitedReader) FetchPlayerMatches(ctx context.Context, creds auth.Credentials, q PlayerMatchQuery) ([]matches.Match, error) {
	if err := p.acquire(ctx); err != nil {
		return nil, err
	}
	defer p.release()
	return p.next.FetchPlayerMatches(ctx, creds, q)
}
