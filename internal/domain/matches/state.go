package matches

import "github.com/elevenpool/league-console/internal/timeutil"

// State is the lifecycle state of a match, derived from its fields.
type State string

const (
	StateScheduled State = "SCHEDULED"
	StateOverdue   State = "OVERDUE"
	StateCompleted State = "COMPLETED"
	StateForfeited State = "FORFEITED"
)

// StateOf derives the lifecycle state of m as of today.
func StateOf(m Match, today timeutil.Date) State {
	switch {
	case m.Forfeited:
		return StateForfeited
	case HasRecordedScore(m) || m.Winner != nil:
		return StateCompleted
	case m.DeadlineDate != nil && m.DeadlineDate.Before(today):
		return StateOverdue
	default:
		return StateScheduled
	}
}

// Terminal reports whether no further transitions are permitted.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateForfeited
}

// Open reports whether the match still exposes reschedule, deadline and forfeit actions.
func (s State) Open() bool {
	return s == StateScheduled || s == StateOverdue
}
