package store

import (
	"sync"
	"time"

	"github.com/elevenpool/league-console/internal/domain"
	"github.com/elevenpool/league-console/internal/domain/matches"
)

// Ticket identifies one league read. Tickets are ordered by issue time.
type Ticket struct {
	LeagueID domain.ID
	seq      uint64
}

type matchView struct {
	seq     uint64
	matches []matches.Match
	updated time.Time
}

// MatchViews keeps the latest match list per league. A result is only accepted when no
// later-issued read for the same league has already committed, so a slow stale response
// never overwrites newer state.
type MatchViews struct {
	mu    sync.RWMutex
	seq   uint64
	views map[domain.ID]matchView
}

// NewMatchViews constructs an empty MatchViews.
func NewMatchViews() *MatchViews {
	return &MatchViews{
		views: make(map[domain.ID]matchView),
	}
}

// Begin issues a ticket for a league read that is about to start.
func (s *MatchViews) Begin(leagueID domain.ID) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return Ticket{LeagueID: leagueID, seq: s.seq}
}

// Commit stores ms for the ticket's league unless a later ticket already committed.
// It reports whether the result was accepted.
func (s *MatchViews) Commit(t Ticket, ms []matches.Match, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.views[t.LeagueID]; ok && current.seq > t.seq {
		return false
	}
	copied := make([]matches.Match, len(ms))
	copy(copied, ms)
	s.views[t.LeagueID] = matchView{seq: t.seq, matches: copied, updated: at}
	return true
}

// Settle commits ms for the ticket and returns the list the caller should show: ms when it was
// accepted, otherwise the newer view that superseded it.
func (s *MatchViews) Settle(t Ticket, ms []matches.Match, at time.Time) []matches.Match {
	if s.Commit(t, ms, at) {
		return ms
	}
	if current, _, ok := s.Get(t.LeagueID); ok {
		return current
	}
	return ms
}

// Get returns a copy of the league's latest committed matches.
func (s *MatchViews) Get(leagueID domain.ID) ([]matches.Match, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view, ok := s.views[leagueID]
	if !ok {
		return nil, time.Time{}, false
	}
	result := make([]matches.Match, len(view.matches))
	copy(result, view.matches)
	return result, view.updated, true
}
