package testutil

import (
	"time"

	"github.com/elevenpool/league-console/internal/app/dashboard"
	appleagues "github.com/elevenpool/league-console/internal/app/leagues"
	appmatches "github.com/elevenpool/league-console/internal/app/matches"
	appplayers "github.com/elevenpool/league-console/internal/app/players"
	"github.com/elevenpool/league-console/internal/metrics"
	"github.com/elevenpool/league-console/internal/providers/fixture"
	"github.com/elevenpool/league-console/internal/store"
)

// Console bundles the application services wired to a seeded fixture provider.
type Console struct {
	Fixture   *fixture.Provider
	Views     *store.MatchViews
	Latest    *store.Latest[dashboard.Summary]
	Metrics   *metrics.Recorder
	Dashboard *dashboard.Service
	Leagues   *appleagues.Service
	Players   *appplayers.Service
	Matches   *appmatches.Service
}

// NewConsole seeds a fixture relative to today and wires every service to it in UTC.
func NewConsole() *Console {
	p := fixture.NewAt(time.Now)
	views := store.NewMatchViews()
	rec := metrics.NewRecorder()
	matchSvc := appmatches.NewService(p, p, views, nil, nil, time.UTC)
	return &Console{
		Fixture:   p,
		Views:     views,
		Latest:    store.NewLatest[dashboard.Summary](),
		Metrics:   rec,
		Dashboard: dashboard.NewService(p, views, rec, nil),
		Leagues:   appleagues.NewService(p, p, matchSvc, nil, nil, time.UTC),
		Players:   appplayers.NewService(p, p, nil, nil),
		Matches:   matchSvc,
	}
}
