package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/elevenpool/league-console/internal/domain"
	"github.com/elevenpool/league-console/internal/domain/leagues"
	"github.com/elevenpool/league-console/internal/domain/matches"
	"github.com/elevenpool/league-console/internal/logging"
)

// MatchFetcher loads one league's matches.
type MatchFetcher func(ctx context.Context, leagueID domain.ID) ([]matches.Match, error)

// LeagueFailure records why a league was left out of an aggregate.
type LeagueFailure struct {
	LeagueID   domain.ID `json:"leagueId"`
	LeagueName string    `json:"leagueName"`
	Err        error     `json:"-"`
	Message    string    `json:"error"`
}

// PartialFailure reports leagues whose fetch failed. The aggregate it accompanies is still complete
// for every other league.
type PartialFailure struct {
	Failures []LeagueFailure
}

func (e *PartialFailure) Error() string {
	names := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		names = append(names, f.LeagueID.String())
	}
	return fmt.Sprintf("%d league(s) excluded from aggregate: %s", len(e.Failures), strings.Join(names, ", "))
}

// Unwrap exposes the per-league causes to errors.Is/As.
func (e *PartialFailure) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		if f.Err != nil {
			errs = append(errs, f.Err)
		}
	}
	return errs
}

// Excluded returns the ids of the failed leagues in league order.
func (e *PartialFailure) Excluded() []domain.ID {
	if e == nil {
		return nil
	}
	ids := make([]domain.ID, 0, len(e.Failures))
	for _, f := range e.Failures {
		ids = append(ids, f.LeagueID)
	}
	return ids
}

// AsPartialFailure attempts to unwrap an error into a PartialFailure.
func AsPartialFailure(err error) (*PartialFailure, bool) {
	var pf *PartialFailure
	if errors.As(err, &pf) {
		return pf, true
	}
	return nil, false
}

type leagueResult struct {
	matches []matches.Match
	err     error
}

// Aggregate fetches every league's matches concurrently and waits for all of them to settle.
// Successful results are unioned in league order. A failed league contributes nothing, is logged,
// and is listed in the returned PartialFailure, which is nil when every fetch succeeded.
func Aggregate(ctx context.Context, ls []leagues.League, fetch MatchFetcher, logger *slog.Logger) ([]matches.Match, *PartialFailure) {
	results := make([]leagueResult, len(ls))

	var wg sync.WaitGroup
	for i, l := range ls {
		wg.Add(1)
		go func(i int, leagueID domain.ID) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					results[i] = leagueResult{err: fmt.Errorf("league %s fetch panicked: %v", leagueID, r)}
				}
			}()
			ms, err := fetch(ctx, leagueID)
			results[i] = leagueResult{matches: ms, err: err}
		}(i, l.ID)
	}
	wg.Wait()

	var all []matches.Match
	var failures []LeagueFailure
	for i, res := range results {
		if res.err != nil {
			failures = append(failures, LeagueFailure{
				LeagueID:   ls[i].ID,
				LeagueName: ls[i].Name,
				Err:        res.err,
				Message:    res.err.Error(),
			})
			logging.Warn(logging.FromContext(ctx, logger), "league excluded from dashboard",
				logging.FieldLeagueID, ls[i].ID.String(),
				logging.FieldError, res.err,
			)
			continue
		}
		all = append(all, res.matches...)
	}

	if len(failures) == 0 {
		return all, nil
	}
	return all, &PartialFailure{Failures: failures}
}
