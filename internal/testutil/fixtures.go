package testutil

import (
	"github.com/elevenpool/league-console/internal/domain"
	"github.com/elevenpool/league-console/internal/domain/matches"
	"github.com/elevenpool/league-console/internal/domain/players"
	"github.com/elevenpool/league-console/internal/timeutil"
)

// SamplePlayer returns a player fixture with the provided id, name and points.
func SamplePlayer(id, name string, points int) players.Player {
	return players.Player{ID: domain.ID(id), Name: name, Points: points}
}

// SampleMatch returns an unplayed match between two sample players.
func SampleMatch(id, leagueID, round string) matches.Match {
	return matches.Match{
		ID:       domain.ID(id),
		LeagueID: domain.ID(leagueID),
		Round:    round,
		Player1:  SamplePlayer("p1", "Player One", 0),
		Player2:  SamplePlayer("p2", "Player Two", 0),
	}
}

// Scored returns m with both scores recorded and the winner resolved.
func Scored(m matches.Match, s1, s2 int) matches.Match {
	m.ScorePlayer1, m.ScorePlayer2 = &s1, &s2
	m.Winner = matches.ResolveWinner(m)
	return m
}

// DatePtr returns a pointer to the calendar date.
func DatePtr(year, month, day int) *timeutil.Date {
	d := timeutil.NewDate(year, month, day)
	return &d
}
