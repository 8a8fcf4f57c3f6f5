package dashboard

import (
	"sort"

	"github.com/elevenpool/league-console/internal/domain/leagues"
	"github.com/elevenpool/league-console/internal/domain/matches"
)

const (
	recentLimit   = 6
	upcomingLimit = 4
)

// Summary is the dashboard view combining totals with recent and upcoming feeds across all leagues.
type Summary struct {
	TotalPlayers    int             `json:"totalPlayers"`
	MatchesPlayed   int             `json:"matchesPlayed"`
	ActiveLeagues   int             `json:"activeLeagues"`
	UpcomingMatches int             `json:"upcomingMatches"`
	Recent          []matches.Match `json:"recentMatches"`
	Upcoming        []matches.Match `json:"upcomingMatchList"`
	Excluded        []LeagueFailure `json:"excluded,omitempty"`
}

// Summarize partitions ms into completed and pending matches and builds the dashboard feeds.
// excluded is carried through so callers can show which leagues are missing.
func Summarize(totalPlayers int, ls []leagues.League, ms []matches.Match, excluded *PartialFailure) Summary {
	completed, pending := matches.Partition(ms)

	recent := sortedByScheduled(completed, true)
	upcoming := sortedByScheduled(pending, false)

	s := Summary{
		TotalPlayers:    totalPlayers,
		MatchesPlayed:   len(completed),
		ActiveLeagues:   len(ls),
		UpcomingMatches: len(pending),
		Recent:          head(recent, recentLimit),
		Upcoming:        head(upcoming, upcomingLimit),
	}
	if excluded != nil {
		s.Excluded = excluded.Failures
	}
	return s
}

// sortedByScheduled returns a copy sorted by scheduled date; undated matches always sort last.
func sortedByScheduled(ms []matches.Match, desc bool) []matches.Match {
	out := make([]matches.Match, len(ms))
	copy(out, ms)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].ScheduledDate, out[j].ScheduledDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		case desc:
			return a.After(*b)
		default:
			return a.Before(*b)
		}
	})
	return out
}

func head(ms []matches.Match, n int) []matches.Match {
	if len(ms) > n {
		ms = ms[:n]
	}
	if ms == nil {
		return []matches.Match{}
	}
	return ms
}
