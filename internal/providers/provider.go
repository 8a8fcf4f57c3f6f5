package providers

import (
	"context"

	"github.com/elevenpool/league-console/internal/auth"
	"github.com/elevenpool/league-console/internal/domain"
	"github.com/elevenpool/league-console/internal/domain/leagues"
	"github.com/elevenpool/league-console/internal/domain/matches"
	"github.com/elevenpool/league-console/internal/domain/players"
	"github.com/elevenpool/league-console/internal/timeutil"
)

// LeagueReader lists leagues.
type LeagueReader interface {
	FetchLeagues(ctx context.Context, creds auth.Credentials) ([]leagues.League, error)
}

// PlayerReader lists players.
type PlayerReader interface {
	FetchPlayers(ctx context.Context, creds auth.Credentials) ([]players.Player, error)
}

// MatchReader fetches match collections.
type MatchReader interface {
	FetchLeagueMatches(ctx context.Context, creds auth.Credentials, leagueID domain.ID) ([]matches.Match, error)
	FetchOverdueMatches(ctx context.Context, creds auth.Credentials) ([]matches.Match, error)
	FetchPlayerMatches(ctx context.Context, creds auth.Credentials, q PlayerMatchQuery) ([]matches.Match, error)
}

// Reader combines all read capabilities. Reads are idempotent and may be retried.
type Reader interface {
	LeagueReader
	PlayerReader
	MatchReader
}

// Writer issues mutating calls. Implementations must never retry them.
type Writer interface {
	CreateLeague(ctx context.Context, creds auth.Credentials, req NewLeague) (leagues.League, error)
	CreatePlayer(ctx context.Context, creds auth.Credentials, req players.CreateRequest) (players.Player, error)
	CreateMatch(ctx context.Context, creds auth.Credentials, req NewMatch) (matches.Match, error)
	GenerateMatches(ctx context.Context, creds auth.Credentials, leagueID domain.ID) error
	Reschedule(ctx context.Context, creds auth.Credentials, matchID domain.ID, newDate timeutil.Date) error
	RecordResult(ctx context.Context, creds auth.Credentials, matchID domain.ID, score1, score2 int) error
	SetDeadline(ctx context.Context, creds auth.Credentials, matchID domain.ID, deadline timeutil.Date) error
	RemoveDeadline(ctx context.Context, creds auth.Credentials, matchID domain.ID) error
	Forfeit(ctx context.Context, creds auth.Credentials, matchID, forfeitingPlayerID domain.ID, reason string) error
}

// LeagueAPI is the full remote API surface.
type LeagueAPI interface {
	Reader
	Writer
}

// PlayerMatchFilter narrows a player's match history.
type PlayerMatchFilter string

const (
	PlayerMatchesAll       PlayerMatchFilter = ""
	PlayerMatchesPending   PlayerMatchFilter = "pending"
	PlayerMatchesCompleted PlayerMatchFilter = "completed"
)

// ParsePlayerMatchFilter maps a query value to a filter; unknown values are rejected.
func ParsePlayerMatchFilter(raw string) (PlayerMatchFilter, error) {
	switch PlayerMatchFilter(raw) {
	case PlayerMatchesAll, PlayerMatchesPending, PlayerMatchesCompleted:
		return PlayerMatchFilter(raw), nil
	case "all":
		return PlayerMatchesAll, nil
	default:
		return "", domain.NewValidationError("filter", "must be one of all, pending, completed")
	}
}

// PlayerMatchQuery selects a player's matches. A non-empty LeagueID takes precedence over Filter,
// matching the league API which exposes no combined route.
type PlayerMatchQuery struct {
	PlayerID domain.ID
	Filter   PlayerMatchFilter
	LeagueID domain.ID
}

// NewLeague is a validated league creation payload.
type NewLeague struct {
	Name      string        `json:"name"`
	StartDate timeutil.Date `json:"startDate"`
	EndDate   timeutil.Date `json:"endDate"`
	PlayerIDs []domain.ID   `json:"playerIds"`
}

// NewMatch is a validated match creation payload.
type NewMatch struct {
	LeagueID      domain.ID     `json:"leagueId"`
	Player1ID     domain.ID     `json:"player1Id"`
	Player2ID     domain.ID     `json:"player2Id"`
	Round         string        `json:"round,omitempty"`
	ScheduledDate timeutil.Date `json:"scheduledDate"`
}
