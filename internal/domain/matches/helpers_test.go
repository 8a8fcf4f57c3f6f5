package matches

import (
	"github.com/elevenpool/league-console/internal/domain"
	"github.com/elevenpool/league-console/internal/domain/players"
	"github.com/elevenpool/league-console/internal/timeutil"
)

func score(n int) *int { return &n }

func date(y, m, d int) *timeutil.Date {
	v := timeutil.NewDate(y, m, d)
	return &v
}

func fixture(id, round string) Match {
	return Match{
		ID:       domain.ID("m" + id),
		LeagueID: "1",
		Round:    round,
		Player1:  players.Player{ID: "10", Name: "Bertin"},
		Player2:  players.Player{ID: "20", Name: "Norbert"},
	}
}

func scored(m Match, s1, s2 int) Match {
	m.ScorePlayer1, m.ScorePlayer2 = score(s1), score(s2)
	m.Winner = ResolveWinner(m)
	return m
}
