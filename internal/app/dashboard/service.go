package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/elevenpool/league-console/internal/auth"
	"github.com/elevenpool/league-console/internal/domain"
	"github.com/elevenpool/league-console/internal/domain/matches"
	"github.com/elevenpool/league-console/internal/logging"
	"github.com/elevenpool/league-console/internal/metrics"
	"github.com/elevenpool/league-console/internal/providers"
	"github.com/elevenpool/league-console/internal/store"
)

// Service builds dashboard summaries from the league API.
type Service struct {
	reader  providers.Reader
	views   *store.MatchViews
	metrics *metrics.Recorder
	logger  *slog.Logger
	now     func() time.Time
}

// NewService constructs a Service. views may be nil; when set, every league fetched for the
// dashboard also refreshes that league's match view.
func NewService(reader providers.Reader, views *store.MatchViews, rec *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		reader:  reader,
		views:   views,
		metrics: rec,
		logger:  logger,
		now:     time.Now,
	}
}

// Build fetches leagues and players once, fans out per league for matches, and summarizes.
// When some leagues fail the summary is still returned, together with a *PartialFailure.
// A failure to list leagues or players aborts the build.
func (s *Service) Build(ctx context.Context, creds auth.Credentials) (Summary, error) {
	start := s.now()

	ls, err := s.reader.FetchLeagues(ctx, creds)
	if err != nil {
		return Summary{}, fmt.Errorf("dashboard: list leagues: %w", err)
	}
	ps, err := s.reader.FetchPlayers(ctx, creds)
	if err != nil {
		return Summary{}, fmt.Errorf("dashboard: list players: %w", err)
	}

	ms, partial := Aggregate(ctx, ls, s.fetcher(creds), s.logger)
	summary := Summarize(len(ps), ls, ms, partial)

	excluded := 0
	if partial != nil {
		excluded = len(partial.Failures)
	}
	s.metrics.RecordDashboardBuild(s.now().Sub(start), excluded)
	logging.Info(logging.FromContext(ctx, s.logger), "dashboard built",
		logging.FieldCount, len(ms),
		logging.FieldExcluded, excluded,
		logging.FieldDurationMS, s.now().Sub(start).Milliseconds(),
	)

	if partial != nil {
		return summary, partial
	}
	return summary, nil
}

func (s *Service) fetcher(creds auth.Credentials) MatchFetcher {
	return func(ctx context.Context, leagueID domain.ID) ([]matches.Match, error) {
		if s.views == nil {
			return s.reader.FetchLeagueMatches(ctx, creds, leagueID)
		}
		ticket := s.views.Begin(leagueID)
		ms, err := s.reader.FetchLeagueMatches(ctx, creds, leagueID)
		if err != nil {
			return nil, err
		}
		return s.views.Settle(ticket, ms, s.now()), nil
	}
}
