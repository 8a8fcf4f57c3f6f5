package matches

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/elevenpool/league-console/internal/auth"
	"github.com/elevenpool/league-console/internal/domain"
	domainmatches "github.com/elevenpool/league-console/internal/domain/matches"
	"github.com/elevenpool/league-console/internal/logging"
	"github.com/elevenpool/league-console/internal/providers"
	"github.com/elevenpool/league-console/internal/store"
	"github.com/elevenpool/league-console/internal/telemetry"
	"github.com/elevenpool/league-console/internal/timeutil"
)

// DefaultForfeitReason is sent when an admin forfeits a match without giving a reason.
const DefaultForfeitReason = "No reason provided"

// Mutation names, used in logs and error reports.
const (
	ActionRecordResult   = "record_result"
	ActionReschedule     = "reschedule"
	ActionSetDeadline    = "set_deadline"
	ActionRemoveDeadline = "remove_deadline"
	ActionForfeit        = "forfeit"
	ActionCreate         = "create_match"
	ActionGenerate       = "generate_matches"
)

// ErrMatchNotFound is returned when a match id is not part of the league's current list.
var ErrMatchNotFound = errors.New("match not found")

// Service enforces the match lifecycle before calling the league API. Every successful mutation
// re-fetches the league's matches and returns them.
type Service struct {
	reader   providers.Reader
	writer   providers.Writer
	views    *store.MatchViews
	reporter *telemetry.Reporter
	logger   *slog.Logger
	loc      *time.Location
	now      func() time.Time
}

// NewService constructs a Service. views and reporter may be nil; loc decides what "today" is
// for overdue checks and defaults to UTC.
func NewService(reader providers.Reader, writer providers.Writer, views *store.MatchViews, reporter *telemetry.Reporter, logger *slog.Logger, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		reader:   reader,
		writer:   writer,
		views:    views,
		reporter: reporter,
		logger:   logger,
		loc:      loc,
		now:      time.Now,
	}
}

// Today returns the current calendar date in the service's location.
func (s *Service) Today() timeutil.Date {
	return timeutil.Today(s.now(), s.loc)
}

// LeagueMatches fetches a league's matches and commits them to the view store.
func (s *Service) LeagueMatches(ctx context.Context, creds auth.Credentials, leagueID domain.ID) ([]domainmatches.Match, error) {
	if leagueID.IsZero() {
		return nil, domain.NewValidationError("leagueId", "is required")
	}
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

// Lookup returns the current state of one match, read fresh from the league API.
func (s *Service) Lookup(ctx context.Context, creds auth.Credentials, leagueID, matchID domain.ID) (domainmatches.Match, error) {
	ms, err := s.LeagueMatches(ctx, creds, leagueID)
	if err != nil {
		return domainmatches.Match{}, err
	}
	for _, m := range ms {
		if m.ID == matchID {
			if m.LeagueID.IsZero() {
				m.LeagueID = leagueID
			}
			return m, nil
		}
	}
	return domainmatches.Match{}, fmt.Errorf("league %s match %s: %w", leagueID, matchID, ErrMatchNotFound)
}

// Overdue returns every unresolved match whose deadline has passed, across leagues.
func (s *Service) Overdue(ctx context.Context, creds auth.Credentials) ([]domainmatches.Match, error) {
	return s.reader.FetchOverdueMatches(ctx, creds)
}

// RecordResult stores both scores for an open match.
func (s *Service) RecordResult(ctx context.Context, creds auth.Credentials, m domainmatches.Match, score1, score2 *int) ([]domainmatches.Match, error) {
	if err := validScore("scorePlayer1", score1); err != nil {
		return nil, err
	}
	if err := validScore("scorePlayer2", score2); err != nil {
		return nil, err
	}
	if err := s.requireOpen(m, "record a result for"); err != nil {
		return nil, err
	}
	return s.mutate(ctx, creds, ActionRecordResult, m, func() error {
		return s.writer.RecordResult(ctx, creds, m.ID, *score1, *score2)
	})
}

// Reschedule moves an unplayed match to newDate.
func (s *Service) Reschedule(ctx context.Context, creds auth.Credentials, m domainmatches.Match, newDate string) ([]domainmatches.Match, error) {
	date, err := parseDate("newDate", newDate)
	if err != nil {
		return nil, err
	}
	if domainmatches.HasRecordedScore(m) {
		return nil, &domain.InvalidStateError{State: string(domainmatches.StateCompleted), Action: "reschedule", Message: "cannot reschedule a completed match"}
	}
	if err := s.requireOpen(m, "reschedule"); err != nil {
		return nil, err
	}
	return s.mutate(ctx, creds, ActionReschedule, m, func() error {
		return s.writer.Reschedule(ctx, creds, m.ID, date)
	})
}

// SetDeadline replaces the deadline of an undecided match.
func (s *Service) SetDeadline(ctx context.Context, creds auth.Credentials, m domainmatches.Match, deadline string) ([]domainmatches.Match, error) {
	date, err := parseDate("deadlineDate", deadline)
	if err != nil {
		return nil, err
	}
	if err := s.requireUndecided(m, "set a deadline on"); err != nil {
		return nil, err
	}
	return s.mutate(ctx, creds, ActionSetDeadline, m, func() error {
		return s.writer.SetDeadline(ctx, creds, m.ID, date)
	})
}

// RemoveDeadline clears the deadline of an undecided match.
func (s *Service) RemoveDeadline(ctx context.Context, creds auth.Credentials, m domainmatches.Match) ([]domainmatches.Match, error) {
	if err := s.requireUndecided(m, "remove the deadline of"); err != nil {
		return nil, err
	}
	return s.mutate(ctx, creds, ActionRemoveDeadline, m, func() error {
		return s.writer.RemoveDeadline(ctx, creds, m.ID)
	})
}

// Forfeit resolves an open match against forfeitingPlayerID.
func (s *Service) Forfeit(ctx context.Context, creds auth.Credentials, m domainmatches.Match, forfeitingPlayerID domain.ID, reason string) ([]domainmatches.Match, error) {
	if err := s.requireOpen(m, "forfeit"); err != nil {
		return nil, err
	}
	if _, err := domainmatches.ApplyForfeit(m, forfeitingPlayerID); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultForfeitReason
	}
	return s.mutate(ctx, creds, ActionForfeit, m, func() error {
		return s.writer.Forfeit(ctx, creds, m.ID, forfeitingPlayerID, reason)
	})
}

// Create schedules a single match by hand.
func (s *Service) Create(ctx context.Context, creds auth.Credentials, req domainmatches.CreateRequest) ([]domainmatches.Match, error) {
	if err := domain.ValidateStruct(ctx, req); err != nil {
		return nil, err
	}
	date, err := parseDate("scheduledDate", req.ScheduledDate)
	if err != nil {
		return nil, err
	}
	payload := providers.NewMatch{
		LeagueID:      req.LeagueID,
		Player1ID:     req.Player1ID,
		Player2ID:     req.Player2ID,
		Round:         strings.TrimSpace(req.Round),
		ScheduledDate: date,
	}
	target := domainmatches.Match{LeagueID: req.LeagueID}
	return s.mutate(ctx, creds, ActionCreate, target, func() error {
		_, err := s.writer.CreateMatch(ctx, creds, payload)
		return err
	})
}

// Generate asks the league API to build the league's round-robin schedule.
func (s *Service) Generate(ctx context.Context, creds auth.Credentials, leagueID domain.ID) ([]domainmatches.Match, error) {
	if leagueID.IsZero() {
		return nil, domain.NewValidationError("leagueId", "is required")
	}
	return s.mutate(ctx, creds, ActionGenerate, domainmatches.Match{LeagueID: leagueID}, func() error {
		return s.writer.GenerateMatches(ctx, creds, leagueID)
	})
}

func (s *Service) mutate(ctx context.Context, creds auth.Credentials, action string, m domainmatches.Match, call func() error) ([]domainmatches.Match, error) {
	logger := logging.FromContext(ctx, s.logger)
	if err := call(); err != nil {
		s.reporter.MutationFailed(ctx, action, err, map[string]string{
			logging.FieldLeagueID: m.LeagueID.String(),
			logging.FieldMatchID:  m.ID.String(),
		})
		logging.Error(logger, "match mutation failed", err,
			logging.FieldAction, action,
			logging.FieldLeagueID, m.LeagueID.String(),
			logging.FieldMatchID, m.ID.String(),
		)
		return nil, fmt.Errorf("%s: %w", action, err)
	}
	logging.Info(logger, "match mutation applied",
		logging.FieldAction, action,
		logging.FieldLeagueID, m.LeagueID.String(),
		logging.FieldMatchID, m.ID.String(),
	)

	ms, err := s.LeagueMatches(ctx, creds, m.LeagueID)
	if err != nil {
		logging.Warn(logger, "match list refresh after mutation failed",
			logging.FieldAction, action,
			logging.FieldLeagueID, m.LeagueID.String(),
			logging.FieldError, err,
		)
		return nil, &RefreshError{Action: action, Err: err}
	}
	return ms, nil
}

// requireOpen rejects matches that are completed or forfeited.
func (s *Service) requireOpen(m domainmatches.Match, action string) error {
	state := domainmatches.StateOf(m, s.Today())
	if state.Open() {
		return nil
	}
	return &domain.InvalidStateError{State: string(state), Action: action}
}

// requireUndecided additionally rejects a winner set without scores.
func (s *Service) requireUndecided(m domainmatches.Match, action string) error {
	if m.Winner != nil {
		return &domain.InvalidStateError{State: string(domainmatches.StateCompleted), Action: action, Message: "match already has a winner"}
	}
	return s.requireOpen(m, action)
}

func validScore(field string, score *int) error {
	if score == nil {
		return domain.NewValidationError(field, "is required")
	}
	if *score < 0 {
		return domain.NewValidationError(field, "must not be negative")
	}
	return nil
}

func parseDate(field, raw string) (timeutil.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return timeutil.Date{}, domain.NewValidationError(field, "is required")
	}
	d, err := timeutil.ParseDateParts(strings.TrimSpace(raw))
	if err != nil {
		return timeutil.Date{}, domain.NewValidationError(field, err.Error())
	}
	return d, nil
}
