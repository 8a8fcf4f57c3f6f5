package matches

import (
	"github.com/elevenpool/league-console/internal/domain"
	"github.com/elevenpool/league-console/internal/domain/players"
	"github.com/elevenpool/league-console/internal/timeutil"
)

// Match is a single fixture between two players within a league, as returned by the league API.
// A nil Winner means unplayed or drawn; the scores tell the two apart.
type Match struct {
	ID            domain.ID       `json:"id"`
	Player1       players.Player  `json:"player1"`
	Player2       players.Player  `json:"player2"`
	LeagueID      domain.ID       `json:"leagueId,omitempty"`
	Round         string          `json:"round"`
	ScheduledDate *timeutil.Date  `json:"scheduledDate"`
	DeadlineDate  *timeutil.Date  `json:"deadlineDate"`
	ScorePlayer1  *int            `json:"scorePlayer1"`
	ScorePlayer2  *int            `json:"scorePlayer2"`
	Winner        *players.Player `json:"winner"`
	Forfeited     bool            `json:"forfeited,omitempty"`
	ForfeitReason string          `json:"forfeitReason,omitempty"`
}

// HasPlayer reports whether id is one of the two participants.
func (m Match) HasPlayer(id domain.ID) bool {
	if id.IsZero() {
		return false
	}
	return m.Player1.ID == id || m.Player2.ID == id
}

// CreateRequest is the payload for scheduling a single match by hand.
type CreateRequest struct {
	LeagueID      domain.ID `json:"leagueId" validate:"required"`
	Player1ID     domain.ID `json:"player1Id" validate:"required"`
	Player2ID     domain.ID `json:"player2Id" validate:"required,nefield=Player1ID"`
	Round         string    `json:"round,omitempty" validate:"max=60"`
	ScheduledDate string    `json:"scheduledDate" validate:"required"`
}
