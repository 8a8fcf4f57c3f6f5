package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/elevenpool/league-console/internal/app/dashboard"
	appleagues "github.com/elevenpool/league-console/internal/app/leagues"
	appplayers "github.com/elevenpool/league-console/internal/app/players"
	domainmatches "github.com/elevenpool/league-console/internal/domain/matches"
	domainplayers "github.com/elevenpool/league-console/internal/domain/players"
	"github.com/elevenpool/league-console/internal/poller"
	"github.com/elevenpool/league-console/internal/providers"
	"github.com/elevenpool/league-console/internal/testutil"
)

func newTestHandler(t *testing.T) (*Handler, *testutil.Console) {
	t.Helper()
	c := testutil.NewConsole()
	h := NewHandler(Services{
		Dashboard: c.Dashboard,
		Latest:    c.Latest,
		Leagues:   c.Leagues,
		Players:   c.Players,
		Matches:   c.Matches,
	}, nil, nil)
	return h, c
}

// routes mounts the handler the way the console router does, minus the auth middleware.
func routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/dashboard", h.Dashboard)
	r.Get("/leagues", h.ListLeagues)
	r.Post("/leagues", h.CreateLeague)
	r.Get("/leagues/{leagueID}/matches", h.LeagueMatches)
	r.Get("/leagues/{leagueID}/standings", h.LeagueStandings)
	r.Post("/leagues/{leagueID}/generate", h.GenerateMatches)
	r.Put("/leagues/{leagueID}/matches/{matchID}/result", h.RecordResult)
	r.Put("/leagues/{leagueID}/matches/{matchID}/schedule", h.Reschedule)
	r.Put("/leagues/{leagueID}/matches/{matchID}/deadline", h.SetDeadline)
	r.Delete("/leagues/{leagueID}/matches/{matchID}/deadline", h.RemoveDeadline)
	r.Post("/leagues/{leagueID}/matches/{matchID}/forfeit", h.Forfeit)
	r.Get("/players", h.ListPlayers)
	r.Post("/players", h.CreatePlayer)
	r.Get("/players/rankings", h.PlayerRankings)
	r.Get("/players/{playerID}/matches", h.PlayerMatches)
	r.Post("/matches", h.CreateMatch)
	r.Get("/matches/overdue", h.OverdueMatches)
	return r
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t)
	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(http.HandlerFunc(h.Health), http.MethodPost, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestHealthReportsShutdown(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/health", nil).WithContext(ctx)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestReady(t *testing.T) {
	h, _ := newTestHandler(t)
	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	h.statusFn = func() poller.Status { return poller.Status{LastSuccess: time.Now()} }
	rr = testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	h.statusFn = func() poller.Status { return poller.Status{LastError: "league api down"} }
	rr = testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	if !strings.Contains(rr.Body.String(), "league api down") {
		t.Fatalf("expected last error in body, got %s", rr.Body.String())
	}
}

func TestDashboardLive(t *testing.T) {
	h, _ := newTestHandler(t)
	rr := testutil.ServeAs(routes(h), http.MethodGet, "/dashboard", testutil.AdminToken(t), "")
	testutil.AssertStatus(t, rr, http.StatusOK)

	var summary dashboard.Summary
	testutil.DecodeJSON(t, rr, &summary)
	if summary.TotalPlayers != 6 || summary.ActiveLeagues != 2 || summary.MatchesPlayed != 3 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if len(summary.Excluded) != 0 {
		t.Fatalf("expected no excluded leagues, got %+v", summary.Excluded)
	}
}

func TestDashboardPartialFailureStillServes(t *testing.T) {
	h, c := newTestHandler(t)
	c.Fixture.FailLeague("2", &providers.NetworkError{Method: http.MethodGet, Path: "/matches/league/2", StatusCode: http.StatusServiceUnavailable})

	rr := testutil.ServeAs(routes(h), http.MethodGet, "/dashboard", testutil.AdminToken(t), "")
	testutil.AssertStatus(t, rr, http.StatusOK)

	var summary dashboard.Summary
	testutil.DecodeJSON(t, rr, &summary)
	if len(summary.Excluded) != 1 || summary.Excluded[0].LeagueID != "2" {
		t.Fatalf("expected league 2 excluded, got %+v", summary.Excluded)
	}
	if summary.MatchesPlayed != 2 {
		t.Fatalf("expected only league 1 results, got %d played", summary.MatchesPlayed)
	}
}

func TestDashboardAllLeaguesFailing(t *testing.T) {
	h, c := newTestHandler(t)
	c.Fixture.FailLeague("1", &providers.NetworkError{Method: http.MethodGet, Path: "/matches/league/1", StatusCode: http.StatusUnauthorized})
	c.Fixture.FailLeague("2", &providers.NetworkError{Method: http.MethodGet, Path: "/matches/league/2", StatusCode: http.StatusUnauthorized})

	rr := testutil.ServeAs(routes(h), http.MethodGet, "/dashboard", testutil.AdminToken(t), "")
	testutil.AssertStatus(t, rr, http.StatusOK)
	var summary dashboard.Summary
	testutil.DecodeJSON(t, rr, &summary)
	if len(summary.Excluded) != 2 {
		t.Fatalf("expected both leagues excluded, got %+v", summary.Excluded)
	}
}

func TestDashboardCached(t *testing.T) {
	h, c := newTestHandler(t)
	rr := testutil.ServeAs(routes(h), http.MethodGet, "/dashboard?cached=true", testutil.AdminToken(t), "")
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	c.Latest.Set(dashboard.Summary{TotalPlayers: 42}, time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC))
	rr = testutil.ServeAs(routes(h), http.MethodGet, "/dashboard?cached=true", testutil.AdminToken(t), "")
	testutil.AssertStatus(t, rr, http.StatusOK)
	if rr.Header().Get("Last-Modified") == "" {
		t.Fatalf("expected Last-Modified header")
	}
	var summary dashboard.Summary
	testutil.DecodeJSON(t, rr, &summary)
	if summary.TotalPlayers != 42 {
		t.Fatalf("expected cached summary, got %+v", summary)
	}
}

func TestLeagueMatchesGroupsRounds(t *testing.T) {
	h, _ := newTestHandler(t)
	rr := testutil.ServeAs(routes(h), http.MethodGet, "/leagues/1/matches", testutil.AdminToken(t), "")
	testutil.AssertStatus(t, rr, http.StatusOK)

	var schedule appleagues.Schedule
	testutil.DecodeJSON(t, rr, &schedule)
	if len(schedule.Rounds) != 2 || schedule.Rounds[0].Round != "Round 1" {
		t.Fatalf("unexpected rounds %+v", schedule.Rounds)
	}
	if schedule.Completed != 2 || schedule.Pending != 2 {
		t.Fatalf("expected 2 completed and 2 pending, got %d/%d", schedule.Completed, schedule.Pending)
	}
}

func TestLeagueStandings(t *testing.T) {
	h, _ := newTestHandler(t)
	rr := testutil.ServeAs(routes(h), http.MethodGet, "/leagues/1/standings", testutil.AdminToken(t), "")
	testutil.AssertStatus(t, rr, http.StatusOK)

	var ranked []domainplayers.Ranked
	testutil.DecodeJSON(t, rr, &ranked)
	if len(ranked) != 4 || ranked[0].Rank != 1 {
		t.Fatalf("unexpected standings %+v", ranked)
	}
}

func TestCreateLeague(t *testing.T) {
	h, _ := newTestHandler(t)
	body := `{"name":"Summer Cup","startDate":"2025-06-01","endDate":"2025-08-31","playerIds":[1,2]}`
	rr := testutil.ServeAs(routes(h), http.MethodPost, "/leagues", testutil.AdminToken(t), body)
	testutil.AssertStatus(t, rr, http.StatusCreated)

	rr = testutil.ServeAs(routes(h), http.MethodPost, "/leagues", testutil.AdminToken(t), `{"name":"","playerIds":[]}`)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestRecordResult(t *testing.T) {
	h, _ := newTestHandler(t)
	rr := testutil.ServeAs(routes(h), http.MethodPut, "/leagues/1/matches/14/result", testutil.AdminToken(t),
		`{"scorePlayer1":1,"scorePlayer2":3}`)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var schedule appleagues.Schedule
	testutil.DecodeJSON(t, rr, &schedule)
	if schedule.Completed != 3 {
		t.Fatalf("expected refreshed schedule with 3 completed, got %d", schedule.Completed)
	}
}

func TestRecordResultRejections(t *testing.T) {
	h, _ := newTestHandler(t)
	token := testutil.AdminToken(t)
	cases := []struct {
		name string
		path string
		body string
		want int
	}{
		{"missing score", "/leagues/1/matches/14/result", `{"scorePlayer1":1}`, http.StatusBadRequest},
		{"negative score", "/leagues/1/matches/14/result", `{"scorePlayer1":-1,"scorePlayer2":2}`, http.StatusBadRequest},
		{"already completed", "/leagues/1/matches/11/result", `{"scorePlayer1":1,"scorePlayer2":2}`, http.StatusConflict},
		{"unknown match", "/leagues/1/matches/999/result", `{"scorePlayer1":1,"scorePlayer2":2}`, http.StatusNotFound},
		{"malformed body", "/leagues/1/matches/14/result", `{`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := testutil.ServeAs(routes(h), http.MethodPut, tc.path, token, tc.body)
			testutil.AssertStatus(t, rr, tc.want)
		})
	}
}

func TestRescheduleAndDeadline(t *testing.T) {
	h, _ := newTestHandler(t)
	token := testutil.AdminToken(t)
	newDate := time.Now().UTC().AddDate(0, 0, 10).Format("2006-01-02")

	rr := testutil.ServeAs(routes(h), http.MethodPut, "/leagues/1/matches/14/schedule", token, `{"newDate":"`+newDate+`"}`)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.ServeAs(routes(h), http.MethodPut, "/leagues/1/matches/11/schedule", token, `{"newDate":"`+newDate+`"}`)
	testutil.AssertStatus(t, rr, http.StatusConflict)

	rr = testutil.ServeAs(routes(h), http.MethodPut, "/leagues/1/matches/14/schedule", token, `{"newDate":"10/02/2025"}`)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	rr = testutil.ServeAs(routes(h), http.MethodPut, "/leagues/1/matches/13/deadline", token, `{"deadlineDate":"`+newDate+`"}`)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.ServeAs(routes(h), http.MethodDelete, "/leagues/1/matches/13/deadline", token, "")
	testutil.AssertStatus(t, rr, http.StatusOK)
	var schedule appleagues.Schedule
	testutil.DecodeJSON(t, rr, &schedule)
	for _, round := range schedule.Rounds {
		for _, m := range round.Matches {
			if m.ID == "13" && m.DeadlineDate != nil {
				t.Fatalf("expected deadline cleared, got %v", m.DeadlineDate)
			}
		}
	}
}

func TestForfeit(t *testing.T) {
	h, _ := newTestHandler(t)
	token := testutil.AdminToken(t)

	rr := testutil.ServeAs(routes(h), http.MethodPost, "/leagues/1/matches/13/forfeit", token, `{"forfeitingPlayerId":2}`)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	rr = testutil.ServeAs(routes(h), http.MethodPost, "/leagues/1/matches/13/forfeit", token, `{"forfeitingPlayerId":3}`)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.ServeAs(routes(h), http.MethodPost, "/leagues/1/matches/13/forfeit", token, `{"forfeitingPlayerId":3}`)
	testutil.AssertStatus(t, rr, http.StatusConflict)
}

func TestCreateAndGenerateMatches(t *testing.T) {
	h, _ := newTestHandler(t)
	token := testutil.AdminToken(t)
	date := time.Now().UTC().AddDate(0, 0, 3).Format("2006-01-02")

	rr := testutil.ServeAs(routes(h), http.MethodPost, "/matches", token,
		`{"leagueId":1,"player1Id":1,"player2Id":4,"round":"Round 3","scheduledDate":"`+date+`"}`)
	testutil.AssertStatus(t, rr, http.StatusCreated)
	var schedule appleagues.Schedule
	testutil.DecodeJSON(t, rr, &schedule)
	if len(schedule.Rounds) != 3 {
		t.Fatalf("expected a third round, got %+v", schedule.Rounds)
	}

	rr = testutil.ServeAs(routes(h), http.MethodPost, "/matches", token,
		`{"leagueId":1,"player1Id":1,"player2Id":1,"scheduledDate":"`+date+`"}`)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	rr = testutil.ServeAs(routes(h), http.MethodPost, "/leagues/2/generate", token, "")
	testutil.AssertStatus(t, rr, http.StatusCreated)
}

func TestOverdueMatches(t *testing.T) {
	h, _ := newTestHandler(t)
	rr := testutil.ServeAs(routes(h), http.MethodGet, "/matches/overdue", testutil.AdminToken(t), "")
	testutil.AssertStatus(t, rr, http.StatusOK)

	var ms []domainmatches.Match
	testutil.DecodeJSON(t, rr, &ms)
	if len(ms) != 1 || ms[0].ID != "13" {
		t.Fatalf("expected match 13 overdue, got %+v", ms)
	}
}

func TestPlayersEndpoints(t *testing.T) {
	h, _ := newTestHandler(t)
	token := testutil.AdminToken(t)

	rr := testutil.ServeAs(routes(h), http.MethodGet, "/players", token, "")
	testutil.AssertStatus(t, rr, http.StatusOK)
	var ps []domainplayers.Player
	testutil.DecodeJSON(t, rr, &ps)
	if len(ps) != 6 {
		t.Fatalf("expected 6 players, got %d", len(ps))
	}

	rr = testutil.ServeAs(routes(h), http.MethodGet, "/players/rankings", token, "")
	testutil.AssertStatus(t, rr, http.StatusOK)
	var ranked []domainplayers.Ranked
	testutil.DecodeJSON(t, rr, &ranked)
	if len(ranked) != 6 || ranked[0].ID != "1" {
		t.Fatalf("expected player 1 on top, got %+v", ranked)
	}

	rr = testutil.ServeAs(routes(h), http.MethodPost, "/players", token, `{"name":"Jean Bosco","phone":"+250780000007"}`)
	testutil.AssertStatus(t, rr, http.StatusCreated)

	rr = testutil.ServeAs(routes(h), http.MethodPost, "/players", token, `{"name":"  "}`)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestPlayerMatches(t *testing.T) {
	h, _ := newTestHandler(t)
	token := testutil.AdminToken(t)

	rr := testutil.ServeAs(routes(h), http.MethodGet, "/players/3/matches", token, "")
	testutil.AssertStatus(t, rr, http.StatusOK)
	var history appplayers.History
	testutil.DecodeJSON(t, rr, &history)
	if history.Record.Total != 3 || history.Record.Won != 1 || len(history.Entries) != 3 {
		t.Fatalf("unexpected history %+v", history)
	}

	rr = testutil.ServeAs(routes(h), http.MethodGet, "/players/3/matches?filter=completed", token, "")
	testutil.AssertStatus(t, rr, http.StatusOK)
	history = appplayers.History{}
	testutil.DecodeJSON(t, rr, &history)
	if len(history.Entries) != 2 {
		t.Fatalf("expected 2 completed matches, got %d", len(history.Entries))
	}

	rr = testutil.ServeAs(routes(h), http.MethodGet, "/players/3/matches?filter=bogus", token, "")
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}
