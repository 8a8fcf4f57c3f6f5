package leagueapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/elevenpool/league-console/internal/auth"
	"github.com/elevenpool/league-console/internal/domain"
	"github.com/elevenpool/league-console/internal/domain/leagues"
	"github.com/elevenpool/league-console/internal/domain/matches"
	"github.com/elevenpool/league-console/internal/domain/players"
	"github.com/elevenpool/league-console/internal/providers"
	"github.com/elevenpool/league-console/internal/timeutil"
)

// CreateLeague creates a league and returns the stored record.
func (c *Client) CreateLeague(ctx context.Context, creds auth.Credentials, req providers.NewLeague) (leagues.League, error) {
	var out leagues.League
	err := c.do(ctx, creds, call{method: http.MethodPost, path: "/leagues", endpoint: "POST /leagues", body: req}, &out)
	return out, err
}

// CreatePlayer registers a player and returns the stored record.
func (c *Client) CreatePlayer(ctx context.Context, creds auth.Credentials, req players.CreateRequest) (players.Player, error) {
	var out players.Player
	err := c.do(ctx, creds, call{method: http.MethodPost, path: "/players", endpoint: "POST /players", body: req}, &out)
	return out, err
}

// CreateMatch schedules a single match.
func (c *Client) CreateMatch(ctx context.Context, creds auth.Credentials, req providers.NewMatch) (matches.Match, error) {
	var out matches.Match
	err := c.do(ctx, creds, call{method: http.MethodPost, path: "/matches/create", endpoint: "POST /matches/create", body: req}, &out)
	return out, err
}

// GenerateMatches asks the league API to generate the league's round-robin fixtures.
func (c *Client) GenerateMatches(ctx context.Context, creds auth.Credentials, leagueID domain.ID) error {
	return c.do(ctx, creds, call{
		method:   http.MethodPost,
		path:     "/matches/generate/" + escape(leagueID),
		endpoint: "POST /matches/generate/{leagueId}",
	}, nil)
}

// Reschedule moves a match to newDate.
func (c *Client) Reschedule(ctx context.Context, creds auth.Credentials, matchID domain.ID, newDate timeutil.Date) error {
	return c.do(ctx, creds, call{
		method:   http.MethodPut,
		path:     "/matches/reschedule/" + escape(matchID),
		endpoint: "PUT /matches/reschedule/{matchId}",
		query:    url.Values{"newDate": []string{newDate.String()}},
	}, nil)
}

// RecordResult stores both scores for a match.
func (c *Client) RecordResult(ctx context.Context, creds auth.Credentials, matchID domain.ID, score1, score2 int) error {
	return c.do(ctx, creds, call{
		method:   http.MethodPut,
		path:     "/matches/result/" + escape(matchID),
		endpoint: "PUT /matches/result/{matchId}",
		body:     resultRequest{ScorePlayer1: score1, ScorePlayer2: score2},
	}, nil)
}

// SetDeadline sets or replaces a match deadline.
func (c *Client) SetDeadline(ctx context.Context, creds auth.Credentials, matchID domain.ID, deadline timeutil.Date) error {
	return c.do(ctx, creds, call{
		method:   http.MethodPut,
		path:     "/matches/" + escape(matchID) + "/deadline",
		endpoint: "PUT /matches/{matchId}/deadline",
		body:     deadlineRequest{DeadlineDate: deadline},
	}, nil)
}

// RemoveDeadline clears a match deadline.
func (c *Client) RemoveDeadline(ctx context.Context, creds auth.Credentials, matchID domain.ID) error {
	return c.do(ctx, creds, call{
		method:   http.MethodDelete,
		path:     "/matches/" + escape(matchID) + "/deadline",
		endpoint: "DELETE /matches/{matchId}/deadline",
	}, nil)
}

// Forfeit resolves a match against forfeitingPlayerID.
func (c *Client) Forfeit(ctx context.Context, creds auth.Credentials, matchID, forfeitingPlayerID domain.ID, reason string) error {
	return c.do(ctx, creds, call{
		method:   http.MethodPost,
		path:     "/matches/" + escape(matchID) + "/forfeit",
		endpoint: "POST /matches/{matchId}/forfeit",
		body:     forfeitRequest{ForfeitingPlayerID: forfeitingPlayerID, Reason: reason},
	}, nil)
}
