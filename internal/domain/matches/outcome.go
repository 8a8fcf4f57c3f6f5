package matches

import (
	"github.com/elevenpool/league-console/internal/domain"
	"github.com/elevenpool/league-console/internal/domain/players"
)

// Outcome is a match result from one participant's point of view.
type Outcome string

const (
	OutcomeWon     Outcome = "WON"
	OutcomeLost    Outcome = "LOST"
	OutcomeDraw    Outcome = "DRAW"
	OutcomePending Outcome = "PENDING"
)

// Forfeit margin shown for a forfeited match. The league API owns the real scoring rule.
const (
	ForfeitWinnerScore = 3
	ForfeitLoserScore  = 0
)

// HasRecordedScore reports whether both scores are present. 0-0 is a recorded draw.
func HasRecordedScore(m Match) bool {
	return m.ScorePlayer1 != nil && m.ScorePlayer2 != nil
}

// ResolveWinner returns the higher-scoring player, or nil on a draw or a missing score.
func ResolveWinner(m Match) *players.Player {
	if !HasRecordedScore(m) {
		return nil
	}
	s1, s2 := *m.ScorePlayer1, *m.ScorePlayer2
	switch {
	case s1 > s2:
		p := m.Player1
		return &p
	case s2 > s1:
		p := m.Player2
		return &p
	default:
		return nil
	}
}

// OutcomeForPlayer derives the result sign for playerID. Ids that did not take part in a
// decided match read as LOST.
func OutcomeForPlayer(m Match, playerID domain.ID) Outcome {
	if !HasRecordedScore(m) {
		return OutcomePending
	}
	winner := ResolveWinner(m)
	if winner == nil {
		return OutcomeDraw
	}
	if !playerID.IsZero() && winner.ID == playerID {
		return OutcomeWon
	}
	return OutcomeLost
}

// Opponent returns the other participant, or false when playerID is not in the match.
func Opponent(m Match, playerID domain.ID) (players.Player, bool) {
	switch {
	case playerID.IsZero():
		return players.Player{}, false
	case m.Player1.ID == playerID:
		return m.Player2, true
	case m.Player2.ID == playerID:
		return m.Player1, true
	default:
		return players.Player{}, false
	}
}

// ScoresFor returns (own, opponent) scores for playerID. ok is false when the match has no
// recorded score or the player did not take part.
func ScoresFor(m Match, playerID domain.ID) (own, against int, ok bool) {
	if !HasRecordedScore(m) || !m.HasPlayer(playerID) {
		return 0, 0, false
	}
	if m.Player1.ID == playerID {
		return *m.ScorePlayer1, *m.ScorePlayer2, true
	}
	return *m.ScorePlayer2, *m.ScorePlayer1, true
}

// ApplyForfeit returns a copy of m resolved in the opponent's favour by the fixed forfeit margin.
func ApplyForfeit(m Match, forfeitingPlayerID domain.ID) (Match, error) {
	if m.Forfeited {
		return Match{}, &domain.InvalidStateError{State: string(StateForfeited), Action: "forfeit", Message: "match already forfeited"}
	}
	if m.Winner != nil || HasRecordedScore(m) {
		return Match{}, &domain.InvalidStateError{State: string(StateCompleted), Action: "forfeit", Message: "match already has a result"}
	}
	if forfeitingPlayerID.IsZero() {
		return Match{}, domain.NewValidationError("forfeitingPlayerId", "is required")
	}
	opponent, ok := Opponent(m, forfeitingPlayerID)
	if !ok {
		return Match{}, domain.NewValidationError("forfeitingPlayerId", "must be one of the match participants")
	}

	winScore, loseScore := ForfeitWinnerScore, ForfeitLoserScore
	out := m
	if opponent.ID == m.Player1.ID {
		out.ScorePlayer1, out.ScorePlayer2 = &winScore, &loseScore
	} else {
		out.ScorePlayer1, out.ScorePlayer2 = &loseScore, &winScore
	}
	out.Winner = &opponent
	out.Forfeited = true
	return out, nil
}
