package leagues

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/elevenpool/league-console/internal/auth"
	"github.com/elevenpool/league-console/internal/domain"
	domainleagues "github.com/elevenpool/league-console/internal/domain/leagues"
	"github.com/elevenpool/league-console/internal/domain/matches"
	"github.com/elevenpool/league-console/internal/domain/players"
	"github.com/elevenpool/league-console/internal/logging"
	"github.com/elevenpool/league-console/internal/providers"
	"github.com/elevenpool/league-console/internal/telemetry"
	"github.com/elevenpool/league-console/internal/timeutil"
)

const actionCreate = "create_league"

// ErrLeagueNotFound is returned when a league id is not in the league list.
var ErrLeagueNotFound = errors.New("league not found")

// MatchLister loads a league's matches. The match lifecycle service satisfies it and keeps the
// view store current on every read.
type MatchLister interface {
	LeagueMatches(ctx context.Context, creds auth.Credentials, leagueID domain.ID) ([]matches.Match, error)
}

// Service serves league lists, schedules and standings.
type Service struct {
	reader   providers.LeagueReader
	writer   providers.Writer
	lister   MatchLister
	reporter *telemetry.Reporter
	logger   *slog.Logger
	loc      *time.Location
	now      func() time.Time
}

// NewService constructs a Service. loc decides what "today" is for deadline badges.
func NewService(reader providers.LeagueReader, writer providers.Writer, lister MatchLister, reporter *telemetry.Reporter, logger *slog.Logger, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		reader:   reader,
		writer:   writer,
		lister:   lister,
		reporter: reporter,
		logger:   logger,
		loc:      loc,
		now:      time.Now,
	}
}

// List returns every league.
func (s *Service) List(ctx context.Context, creds auth.Credentials) ([]domainleagues.League, error) {
	return s.reader.FetchLeagues(ctx, creds)
}

// Get returns one league from the league list.
func (s *Service) Get(ctx context.Context, creds auth.Credentials, leagueID domain.ID) (domainleagues.League, error) {
	ls, err := s.reader.FetchLeagues(ctx, creds)
	if err != nil {
		return domainleagues.League{}, err
	}
	for _, l := range ls {
		if l.ID == leagueID {
			return l, nil
		}
	}
	return domainleagues.League{}, fmt.Errorf("league %s: %w", leagueID, ErrLeagueNotFound)
}

// Create validates req and creates the league.
func (s *Service) Create(ctx context.Context, creds auth.Credentials, req domainleagues.CreateRequest) (domainleagues.League, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := domain.ValidateStruct(ctx, req); err != nil {
		return domainleagues.League{}, err
	}
	start, end, err := req.Dates()
	if err != nil {
		return domainleagues.League{}, err
	}

	l, err := s.writer.CreateLeague(ctx, creds, providers.NewLeague{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		PlayerIDs: req.PlayerIDs,
	})
	if err != nil {
		s.reporter.MutationFailed(ctx, actionCreate, err, nil)
		logging.Error(logging.FromContext(ctx, s.logger), "league creation failed", err, logging.FieldAction, actionCreate)
		return domainleagues.League{}, fmt.Errorf("%s: %w", actionCreate, err)
	}
	logging.Info(logging.FromContext(ctx, s.logger), "league created", logging.FieldLeagueID, l.ID.String())
	return l, nil
}

// MatchView is a match annotated with its lifecycle state and, while open, its deadline badge.
type MatchView struct {
	matches.Match
	State             matches.State           `json:"state"`
	DeadlineStatus    timeutil.DeadlineStatus `json:"deadlineStatus,omitempty"`
	DeadlineLabel     string                  `json:"deadlineLabel,omitempty"`
	DaysUntilDeadline *int                    `json:"daysUntilDeadline,omitempty"`
}

// RoundView is one round of a league schedule.
type RoundView struct {
	Round   string      `json:"round"`
	Number  int         `json:"number"`
	Matches []MatchView `json:"matches"`
}

// Schedule is a league's matches grouped by round.
type Schedule struct {
	LeagueID  domain.ID   `json:"leagueId"`
	Rounds    []RoundView `json:"rounds"`
	Completed int         `json:"completed"`
	Pending   int         `json:"pending"`
}

// Matches returns the league's matches grouped by round in ascending round order.
func (s *Service) Matches(ctx context.Context, creds auth.Credentials, leagueID domain.ID) (Schedule, error) {
	ms, err := s.lister.LeagueMatches(ctx, creds, leagueID)
	if err != nil {
		return Schedule{}, err
	}
	return BuildSchedule(leagueID, ms, timeutil.Today(s.now(), s.loc)), nil
}

// BuildSchedule groups ms by round and annotates each match as of today.
func BuildSchedule(leagueID domain.ID, ms []matches.Match, today timeutil.Date) Schedule {
	completed, pending := matches.Partition(ms)
	out := Schedule{
		LeagueID:  leagueID,
		Rounds:    []RoundView{},
		Completed: len(completed),
		Pending:   len(pending),
	}
	for _, g := range matches.GroupByRound(ms) {
		rv := RoundView{Round: g.Round, Number: g.Number, Matches: make([]MatchView, 0, len(g.Matches))}
		for _, m := range g.Matches {
			rv.Matches = append(rv.Matches, annotate(m, today))
		}
		out.Rounds = append(out.Rounds, rv)
	}
	return out
}

func annotate(m matches.Match, today timeutil.Date) MatchView {
	v := MatchView{Match: m, State: matches.StateOf(m, today)}
	if !v.State.Open() || m.DeadlineDate == nil {
		return v
	}
	days := timeutil.DaysUntil(*m.DeadlineDate, today)
	v.DeadlineStatus = timeutil.ClassifyDeadline(m.DeadlineDate, today)
	v.DeadlineLabel = timeutil.DeadlineLabel(v.DeadlineStatus, days)
	v.DaysUntilDeadline = &days
	return v
}

// Standings ranks the league's players and counts their scored matches in this league.
func (s *Service) Standings(ctx context.Context, creds auth.Credentials, leagueID domain.ID) ([]players.Ranked, error) {
	l, err := s.Get(ctx, creds, leagueID)
	if err != nil {
		return nil, err
	}
	ms, err := s.lister.LeagueMatches(ctx, creds, leagueID)
	if err != nil {
		return nil, err
	}
	ranked := players.RankPlayers(l.Players)
	for i := range ranked {
		ranked[i].GamesPlayed = matches.GamesPlayed(ms, ranked[i].ID)
	}
	return ranked, nil
}
