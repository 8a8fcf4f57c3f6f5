package players

import (
	"fmt"
	"math"
	"sort"
)

// winPercentageDamping is the constant in points/(points+k). The league API does not track
// matches played per player, so the console approximates a win rate from points alone.
const winPercentageDamping = 5

// Ranked is a player with its derived table position and statistics.
type Ranked struct {
	Player
	Rank           int `json:"rank"`
	WinPercentage  int `json:"winPercentage"`
	GoalDifference int `json:"goalDifference"`
	GamesPlayed    int `json:"gamesPlayed"`
}

// RankPlayers orders players by points, highest first, keeping input order on ties, and assigns 1-based ranks.
// The input slice is not modified.
func RankPlayers(ps []Player) []Ranked {
	sorted := make([]Player, len(ps))
	copy(sorted, ps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points > sorted[j].Points
	})

	ranked := make([]Ranked, len(sorted))
	for i, p := range sorted {
		ranked[i] = Ranked{
			Player:         p,
			Rank:           i + 1,
			WinPercentage:  WinPercentage(p),
			GoalDifference: GoalDifference(p),
		}
	}
	return ranked
}

// WinPercentage returns round(points/(points+5)*100).
func WinPercentage(p Player) int {
	if p.Points <= 0 {
		return 0
	}
	points := float64(p.Points)
	return int(math.Round(points / (points + winPercentageDamping) * 100))
}

// FormatWinPercentage renders WinPercentage with a percent sign.
func FormatWinPercentage(p Player) string {
	return fmt.Sprintf("%d%%", WinPercentage(p))
}

// GoalDifference returns goals scored minus goals conceded.
func GoalDifference(p Player) int {
	return p.GoalsScored - p.GoalsConceded
}
