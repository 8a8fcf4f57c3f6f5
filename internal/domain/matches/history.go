package matches

import "github.com/elevenpool/league-console/internal/domain"

// Record tallies a player's matches by outcome.
type Record struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Won       int `json:"won"`
	Lost      int `json:"lost"`
	Drawn     int `json:"drawn"`
}

// RecordFor tallies ms from playerID's point of view. Matches the player is not in are skipped.
func RecordFor(ms []Match, playerID domain.ID) Record {
	var r Record
	for _, m := range ms {
		if !m.HasPlayer(playerID) {
			continue
		}
		r.Total++
		switch OutcomeForPlayer(m, playerID) {
		case OutcomePending:
			r.Pending++
			continue
		case OutcomeWon:
			r.Won++
		case OutcomeLost:
			r.Lost++
		case OutcomeDraw:
			r.Drawn++
		}
		r.Completed++
	}
	return r
}

// GamesPlayed counts scored matches that include playerID.
func GamesPlayed(ms []Match, playerID domain.ID) int {
	n := 0
	for _, m := range ms {
		if m.HasPlayer(playerID) && HasRecordedScore(m) {
			n++
		}
	}
	return n
}

// Partition splits ms into scored and unscored matches, keeping input order.
func Partition(ms []Match) (completed, pending []Match) {
	for _, m := range ms {
		if HasRecordedScore(m) {
			completed = append(completed, m)
		} else {
			pending = append(pending, m)
		}
	}
	return completed, pending
}
