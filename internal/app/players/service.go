package players

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/elevenpool/league-console/internal/auth"
	"github.com/elevenpool/league-console/internal/domain"
	"github.com/elevenpool/league-console/internal/domain/matches"
	domainplayers "github.com/elevenpool/league-console/internal/domain/players"
	"github.com/elevenpool/league-console/internal/logging"
	"github.com/elevenpool/league-console/internal/providers"
	"github.com/elevenpool/league-console/internal/telemetry"
)

const actionCreate = "create_player"

// Reader is the subset of the league API the player views need.
type Reader interface {
	providers.PlayerReader
	FetchPlayerMatches(ctx context.Context, creds auth.Credentials, q providers.PlayerMatchQuery) ([]matches.Match, error)
}

// Service serves the player list, rankings and match history.
type Service struct {
	reader   Reader
	writer   providers.Writer
	reporter *telemetry.Reporter
	logger   *slog.Logger
}

// NewService constructs a Service.
func NewService(reader Reader, writer providers.Writer, reporter *telemetry.Reporter, logger *slog.Logger) *Service {
	return &Service{reader: reader, writer: writer, reporter: reporter, logger: logger}
}

// List returns every player.
func (s *Service) List(ctx context.Context, creds auth.Credentials) ([]domainplayers.Player, error) {
	return s.reader.FetchPlayers(ctx, creds)
}

// Rankings returns all players ordered by points.
func (s *Service) Rankings(ctx context.Context, creds auth.Credentials) ([]domainplayers.Ranked, error) {
	ps, err := s.reader.FetchPlayers(ctx, creds)
	if err != nil {
		return nil, err
	}
	return domainplayers.RankPlayers(ps), nil
}

// Create validates req and registers the player.
func (s *Service) Create(ctx context.Context, creds auth.Credentials, req domainplayers.CreateRequest) (domainplayers.Player, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := domain.ValidateStruct(ctx, req); err != nil {
		return domainplayers.Player{}, err
	}
	p, err := s.writer.CreatePlayer(ctx, creds, req)
	if err != nil {
		s.reporter.MutationFailed(ctx, actionCreate, err, nil)
		logging.Error(logging.FromContext(ctx, s.logger), "player creation failed", err, logging.FieldAction, actionCreate)
		return domainplayers.Player{}, fmt.Errorf("%s: %w", actionCreate, err)
	}
	logging.Info(logging.FromContext(ctx, s.logger), "player created", logging.FieldPlayerID, p.ID.String())
	return p, nil
}

// Entry is one match from a player's point of view.
type Entry struct {
	Match    matches.Match        `json:"match"`
	Opponent domainplayers.Player `json:"opponent"`
	Outcome  matches.Outcome      `json:"outcome"`
	Score    *string              `json:"score,omitempty"`
}

// History is a player's matches with a tally derived from the recorded scores.
type History struct {
	PlayerID domain.ID                   `json:"playerId"`
	Filter   providers.PlayerMatchFilter `json:"filter,omitempty"`
	LeagueID domain.ID                   `json:"leagueId,omitempty"`
	Entries  []Entry                     `json:"matches"`
	Record   matches.Record              `json:"record"`
}

// History loads a player's matches narrowed by filter ("", all, pending, completed) or by league.
func (s *Service) History(ctx context.Context, creds auth.Credentials, playerID domain.ID, filter string, leagueID domain.ID) (History, error) {
	if playerID.IsZero() {
		return History{}, domain.NewValidationError("playerId", "is required")
	}
	f, err := providers.ParsePlayerMatchFilter(strings.ToLower(strings.TrimSpace(filter)))
	if err != nil {
		return History{}, err
	}
	q := providers.PlayerMatchQuery{PlayerID: playerID, Filter: f, LeagueID: leagueID}
	ms, err := s.reader.FetchPlayerMatches(ctx, creds, q)
	if err != nil {
		return History{}, err
	}

	h := History{
		PlayerID: playerID,
		Filter:   f,
		LeagueID: leagueID,
		Entries:  make([]Entry, 0, len(ms)),
		Record:   matches.RecordFor(ms, playerID),
	}
	for _, m := range ms {
		h.Entries = append(h.Entries, entryFor(m, playerID))
	}
	return h, nil
}

func entryFor(m matches.Match, playerID domain.ID) Entry {
	e := Entry{Match: m, Outcome: matches.OutcomeForPlayer(m, playerID)}
	if opp, ok := matches.Opponent(m, playerID); ok {
		e.Opponent = opp
	}
	if own, against, ok := matches.ScoresFor(m, playerID); ok {
		score := fmt.Sprintf("%d - %d", own, against)
		e.Score = &score
	}
	return e
}
