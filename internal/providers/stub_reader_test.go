package providers

import (
	"context"
	"sync/atomic"

	"github.com/elevenpool/league-console/internal/auth"
	"github.com/elevenpool/league-console/internal/domain"
	"github.com/elevenpool/league-console/internal/domain/leagues"
	"github.com/elevenpool/league-console/internal/domain/matches"
	"github.com/elevenpool/league-console/internal/domain/players"
)

// flakeyReader fails the first failures calls with err, then succeeds.
type flakeyReader struct {
	failures int32
	err      error
	calls    atomic.Int32
	block    chan struct{}
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (f *flakeyReader) call() error {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if f.block != nil {
		<-f.block
	}
	if f.calls.Add(1) <= f.failures {
		return f.err
	}
	return nil
}

func (f *flakeyReader) FetchLeagues(ctx context.Context, creds auth.Credentials) ([]leagues.League, error) {
	if err := f.call(); err != nil {
		return nil, err
	}
	return []leagues.League{{ID: "1", Name: "Spring"}}, nil
}

func (f *flakeyReader) FetchPlayers(ctx context.Context, creds auth.Credentials) ([]players.Player, error) {
	if err := f.call(); err != nil {
		return nil, err
	}
	return []players.Player{{ID: "10"}}, nil
}

func (f *flakeyReader) FetchLeagueMatches(ctx context.Context, creds auth.Credentials, leagueID domain.ID) ([]matches.Match, error) {
	if err := f.call(); err != nil {
		return nil, err
	}
	return []matches.Match{{ID: "ok", LeagueID: leagueID}}, nil
}

func (f *flakeyReader) FetchOverdueMatches(ctx context.Context, creds auth.Credentials) ([]matches.Match, error) {
	if err := f.call(); err != nil {
		return nil, err
	}
	return []matches.Match{{ID: "late"}}, nil
}

func (f *flakeyReader) FetchPlayerMatches(ctx context.Context, creds auth.Credentials, q PlayerMatchQuery) ([]matches.Match, error) {
	if err := f.call(); err != nil {
		return nil, err
	}
	return []matches.Match{{ID: "p"}}, nil
}
