package fixture

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/elevenpool/league-console/internal/auth"
	"github.com/elevenpool/league-console/internal/domain"
	"github.com/elevenpool/league-console/internal/domain/leagues"
	"github.com/elevenpool/league-console/internal/domain/matches"
	"github.com/elevenpool/league-console/internal/domain/players"
	"github.com/elevenpool/league-console/internal/providers"
	"github.com/elevenpool/league-console/internal/timeutil"
)

// Provider is an in-memory league API seeded with a small deterministic league, useful for local
// runs and tests. It applies mutations the way the league API does so the console can be
// exercised end to end without a backend.
type Provider struct {
	mu       sync.Mutex
	now      func() time.Time
	leagues  []leagues.League
	players  []players.Player
	matches  []matches.Match
	failures map[domain.ID]error
	nextID   int64
}

var _ providers.LeagueAPI = (*Provider)(nil)

// New creates a fixture provider seeded relative to the current day.
func New() *Provider {
	return NewAt(time.Now)
}

// NewAt creates a fixture provider seeded relative to now().
func NewAt(now func() time.Time) *Provider {
	p := &Provider{now: now, failures: map[domain.ID]error{}, nextID: 100}
	p.seed(timeutil.DateOf(now().UTC()))
	return p
}

// FailLeague makes every match fetch for leagueID fail with err; a nil err clears it.
func (p *Provider) FailLeague(leagueID domain.ID, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err == nil {
		delete(p.failures, leagueID)
		return
	}
	p.failures[leagueID] = err
}

func (p *Provider) seed(today timeutil.Date) {
	roster := []players.Player{
		{ID: "1", Name: "Bertin Mugisha", Nickname: "Bertin", Phone: "+250780000001", Points: 7, GoalsScored: 17, GoalsConceded: 7},
		{ID: "2", Name: "Hussein Kalisa", Phone: "+250780000002", Points: 6, GoalsScored: 15, GoalsConceded: 10},
		{ID: "3", Name: "Norbert Habimana", Phone: "+250780000003", Points: 6, GoalsScored: 16, GoalsConceded: 14},
		{ID: "4", Name: "Aline Uwase", Phone: "+250780000004", Points: 3, GoalsScored: 9, GoalsConceded: 12},
		{ID: "5", Name: "Eric Ndayishimiye", Phone: "+250780000005", Points: 1, GoalsScored: 5, GoalsConceded: 11},
		{ID: "6", Name: "Diane Ingabire", Phone: "+250780000006", Points: 0, GoalsScored: 2, GoalsConceded: 10},
	}
	p.players = roster

	start, end := today.AddDays(-21), today.AddDays(35)
	p.leagues = []leagues.League{
		{ID: "1", Name: "Kigali Premier", StartDate: &start, EndDate: &end, Players: roster[:4]},
		{ID: "2", Name: "Weekend Open", StartDate: &start, EndDate: &end, Players: roster[2:]},
	}

	p.matches = []matches.Match{
		p.scoredMatch("11", "1", "Round 1", roster[0], roster[1], today.AddDays(-14), 3, 1),
		p.scoredMatch("12", "1", "Round 1", roster[2], roster[3], today.AddDays(-13), 2, 2),
		p.scheduledMatch("13", "1", "Round 2", roster[0], roster[2], today.AddDays(-10)),
		p.scheduledMatch("14", "1", "Round 2", roster[1], roster[3], today.AddDays(2)),
		p.scoredMatch("21", "2", "Round 1", roster[2], roster[4], today.AddDays(-7), 3, 0),
		p.scheduledMatch("22", "2", "Round 1", roster[3], roster[5], today.AddDays(-4)),
		p.scheduledMatch("23", "2", "Round 2", roster[4], roster[5], today.AddDays(5)),
	}
}

func (p *Provider) scheduledMatch(id, leagueID, round string, p1, p2 players.Player, day timeutil.Date) matches.Match {
	scheduled := day
	deadline := day.AddDays(7)
	return matches.Match{
		ID:            domain.ID(id),
		LeagueID:      domain.ID(leagueID),
		Round:         round,
		Player1:       p1,
		Player2:       p2,
		ScheduledDate: &scheduled,
		DeadlineDate:  &deadline,
	}
}

func (p *Provider) scoredMatch(id, leagueID, round string, p1, p2 players.Player, day timeutil.Date, s1, s2 int) matches.Match {
	m := p.scheduledMatch(id, leagueID, round, p1, p2, day)
	m.ScorePlayer1, m.ScorePlayer2 = &s1, &s2
	m.Winner = matches.ResolveWinner(m)
	return m
}

// FetchLeagues returns the seeded leagues.
func (p *Provider) FetchLeagues(ctx context.Context, creds auth.Credentials) ([]leagues.League, error) {
	_ = ctx
	_ = creds
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]leagues.League, len(p.leagues))
	copy(out, p.leagues)
	return out, nil
}

// FetchPlayers returns the seeded players.
func (p *Provider) FetchPlayers(ctx context.Context, creds auth.Credentials) ([]players.Player, error) {
	_ = ctx
	_ = creds
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]players.Player, len(p.players))
	copy(out, p.players)
	return out, nil
}

// FetchLeagueMatches returns a league's matches, or the injected failure.
func (p *Provider) FetchLeagueMatches(ctx context.Context, creds auth.Credentials, leagueID domain.ID) ([]matches.Match, error) {
	_ = ctx
	_ = creds
	p.mu.Lock()
	defer p.mu.Unlock()
	if err, ok := p.failures[leagueID]; ok {
		return nil, err
	}
	return p.filterLocked(func(m matches.Match) bool { return m.LeagueID == leagueID }), nil
}

// FetchOverdueMatches returns unresolved matches whose deadline has passed.
func (p *Provider) FetchOverdueMatches(ctx context.Context, creds auth.Credentials) ([]matches.Match, error) {
	_ = ctx
	_ = creds
	today := timeutil.DateOf(p.now().UTC())
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filterLocked(func(m matches.Match) bool {
		return matches.StateOf(m, today) == matches.StateOverdue
	}), nil
}

// FetchPlayerMatches returns a player's matches narrowed by league or completion.
func (p *Provider) FetchPlayerMatches(ctx context.Context, creds auth.Credentials, q providers.PlayerMatchQuery) ([]matches.Match, error) {
	_ = ctx
	_ = creds
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filterLocked(func(m matches.Match) bool {
		if !m.HasPlayer(q.PlayerID) {
			return false
		}
		if !q.LeagueID.IsZero() {
			return m.LeagueID == q.LeagueID
		}
		switch q.Filter {
		case providers.PlayerMatchesPending:
			return m.Winner == nil && !matches.HasRecordedScore(m)
		case providers.PlayerMatchesCompleted:
			return m.Winner != nil || matches.HasRecordedScore(m)
		default:
			return true
		}
	}), nil
}

func (p *Provider) filterLocked(keep func(matches.Match) bool) []matches.Match {
	out := []matches.Match{}
	for _, m := range p.matches {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

// CreateLeague stores a new league with the referenced players.
func (p *Provider) CreateLeague(ctx context.Context, creds auth.Credentials, req providers.NewLeague) (leagues.League, error) {
	_ = ctx
	_ = creds
	p.mu.Lock()
	defer p.mu.Unlock()

	roster := []players.Player{}
	for _, id := range req.PlayerIDs {
		pl, ok := p.playerLocked(id)
		if !ok {
			return leagues.League{}, notFound(http.MethodPost, "/leagues", "player "+id.String())
		}
		roster = append(roster, pl)
	}
	start, end := req.StartDate, req.EndDate
	l := leagues.League{ID: p.newIDLocked(), Name: req.Name, StartDate: &start, EndDate: &end, Players: roster}
	p.leagues = append(p.leagues, l)
	return l, nil
}

// CreatePlayer stores a new player with empty statistics.
func (p *Provider) CreatePlayer(ctx context.Context, creds auth.Credentials, req players.CreateRequest) (players.Player, error) {
	_ = ctx
	_ = creds
	p.mu.Lock()
	defer p.mu.Unlock()
	pl := players.Player{ID: p.newIDLocked(), Name: req.Name, Phone: req.Phone}
	p.players = append(p.players, pl)
	return pl, nil
}

// CreateMatch stores a new match with a deadline a week after the scheduled date.
func (p *Provider) CreateMatch(ctx context.Context, creds auth.Credentials, req providers.NewMatch) (matches.Match, error) {
	_ = ctx
	_ = creds
	p.mu.Lock()
	defer p.mu.Unlock()

	p1, ok1 := p.playerLocked(req.Player1ID)
	p2, ok2 := p.playerLocked(req.Player2ID)
	if !ok1 || !ok2 {
		return matches.Match{}, notFound(http.MethodPost, "/matches/create", "player")
	}
	m := p.scheduledMatch(p.newIDLocked().String(), req.LeagueID.String(), req.Round, p1, p2, req.ScheduledDate)
	p.matches = append(p.matches, m)
	return m, nil
}

// GenerateMatches is accepted but leaves the seeded schedule untouched; fixture generation is
// owned by the league API.
func (p *Provider) GenerateMatches(ctx context.Context, creds auth.Credentials, leagueID domain.ID) error {
	_ = ctx
	_ = creds
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, l := range p.leagues {
		if l.ID == leagueID {
			return nil
		}
	}
	return notFound(http.MethodPost, "/matches/generate/"+leagueID.String(), "league")
}

// Reschedule moves a match and its deadline.
func (p *Provider) Reschedule(ctx context.Context, creds auth.Credentials, matchID domain.ID, newDate timeutil.Date) error {
	return p.mutate(matchID, http.MethodPut, "/matches/reschedule/", func(m *matches.Match) error {
		scheduled := newDate
		deadline := newDate.AddDays(7)
		m.ScheduledDate, m.DeadlineDate = &scheduled, &deadline
		return nil
	})
}

// RecordResult stores the scores and resolves the winner.
func (p *Provider) RecordResult(ctx context.Context, creds auth.Credentials, matchID domain.ID, score1, score2 int) error {
	return p.mutate(matchID, http.MethodPut, "/matches/result/", func(m *matches.Match) error {
		m.ScorePlayer1, m.ScorePlayer2 = &score1, &score2
		m.Winner = matches.ResolveWinner(*m)
		return nil
	})
}

// SetDeadline replaces a match deadline.
func (p *Provider) SetDeadline(ctx context.Context, creds auth.Credentials, matchID domain.ID, deadline timeutil.Date) error {
	return p.mutate(matchID, http.MethodPut, "/matches/deadline/", func(m *matches.Match) error {
		d := deadline
		m.DeadlineDate = &d
		return nil
	})
}

// RemoveDeadline clears a match deadline.
func (p *Provider) RemoveDeadline(ctx context.Context, creds auth.Credentials, matchID domain.ID) error {
	return p.mutate(matchID, http.MethodDelete, "/matches/deadline/", func(m *matches.Match) error {
		m.DeadlineDate = nil
		return nil
	})
}

// Forfeit resolves a match against forfeitingPlayerID.
func (p *Provider) Forfeit(ctx context.Context, creds auth.Credentials, matchID, forfeitingPlayerID domain.ID, reason string) error {
	return p.mutate(matchID, http.MethodPost, "/matches/forfeit/", func(m *matches.Match) error {
		out, err := matches.ApplyForfeit(*m, forfeitingPlayerID)
		if err != nil {
			return &providers.NetworkError{Method: http.MethodPost, Path: "/matches/" + matchID.String() + "/forfeit", StatusCode: http.StatusBadRequest, Message: err.Error()}
		}
		out.ForfeitReason = reason
		*m = out
		return nil
	})
}

func (p *Provider) mutate(matchID domain.ID, method, path string, apply func(*matches.Match) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.matches {
		if p.matches[i].ID == matchID {
			return apply(&p.matches[i])
		}
	}
	return notFound(method, path+matchID.String(), "match")
}

func (p *Provider) playerLocked(id domain.ID) (players.Player, bool) {
	for _, pl := range p.players {
		if pl.ID == id {
			return pl, true
		}
	}
	return players.Player{}, false
}

func (p *Provider) newIDLocked() domain.ID {
	p.nextID++
	return domain.ID(strconv.FormatInt(p.nextID, 10))
}

func notFound(method, path, what string) error {
	return &providers.NetworkError{Method: method, Path: path, StatusCode: http.StatusNotFound, Message: what + " not found"}
}
