package leagueapi

import (
	"context"
	"net/http"

	"github.com/elevenpool/league-console/internal/auth"
	"github.com/elevenpool/league-console/internal/domain"
	"github.com/elevenpool/league-console/internal/domain/leagues"
	"github.com/elevenpool/league-console/internal/domain/matches"
	"github.com/elevenpool/league-console/internal/domain/players"
	"github.com/elevenpool/league-console/internal/providers"
)

// FetchLeagues lists every league.
func (c *Client) FetchLeagues(ctx context.Context, creds auth.Credentials) ([]leagues.League, error) {
	var out []leagues.League
	err := c.do(ctx, creds, call{method: http.MethodGet, path: "/leagues", endpoint: "GET /leagues"}, &out)
	return out, err
}

// FetchPlayers lists every player.
func (c *Client) FetchPlayers(ctx context.Context, creds auth.Credentials) ([]players.Player, error) {
	var out []players.Player
	err := c.do(ctx, creds, call{method: http.MethodGet, path: "/players", endpoint: "GET /players"}, &out)
	return out, err
}

// FetchLeagueMatches lists a league's matches. Matches are stamped with leagueID when the API omits it.
func (c *Client) FetchLeagueMatches(ctx context.Context, creds auth.Credentials, leagueID domain.ID) ([]matches.Match, error) {
	var out []matches.Match
	err := c.do(ctx, creds, call{
		method:   http.MethodGet,
		path:     "/matches/league/" + escape(leagueID),
		endpoint: "GET /matches/league/{leagueId}",
	}, &out)
	if err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].LeagueID.IsZero() {
			out[i].LeagueID = leagueID
		}
	}
	return out, nil
}

// FetchOverdueMatches lists matches past their deadline across all leagues.
func (c *Client) FetchOverdueMatches(ctx context.Context, creds auth.Credentials) ([]matches.Match, error) {
	var out []matches.Match
	err := c.do(ctx, creds, call{method: http.MethodGet, path: "/matches/overdue", endpoint: "GET /matches/overdue"}, &out)
	return out, err
}

// FetchPlayerMatches lists a player's matches, optionally narrowed to a league or a completion filter.
func (c *Client) FetchPlayerMatches(ctx context.Context, creds auth.Credentials, q providers.PlayerMatchQuery) ([]matches.Match, error) {
	path := "/matches/player/" + escape(q.PlayerID)
	endpoint := "GET /matches/player/{playerId}"
	switch {
	case !q.LeagueID.IsZero():
		path += "/league/" + escape(q.LeagueID)
		endpoint += "/league/{leagueId}"
	case q.Filter != providers.PlayerMatchesAll:
		path += "/" + string(q.Filter)
		endpoint += "/" + string(q.Filter)
	}

	var out []matches.Match
	err := c.do(ctx, creds, call{method: http.MethodGet, path: path, endpoint: endpoint}, &out)
	return out, err
}
