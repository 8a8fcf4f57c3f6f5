package leagueapi

import (
	"github.com/elevenpool/league-console/internal/domain"
	"github.com/elevenpool/league-console/internal/timeutil"
)

type resultRequest struct {
	ScorePlayer1 int `json:"scorePlayer1"`
	ScorePlayer2 int `json:"scorePlayer2"`
}

type deadlineRequest struct {
	DeadlineDate timeutil.Date `json:"deadlineDate"`
}

type forfeitRequest struct {
	ForfeitingPlayerID domain.ID `json:"forfeitingPlayerId"`
	Reason             string    `json:"reason"`
}
