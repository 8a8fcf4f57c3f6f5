package handlers

import (
	nethttp "net/http"

	domainleagues "github.com/elevenpool/league-console/internal/domain/leagues"
)

// ListLeagues returns every league.
func (h *Handler) ListLeagues(w nethttp.ResponseWriter, r *nethttp.Request) {
	ls, err := h.svc.Leagues.List(r.Context(), credentials(r))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, ls, h.logger)
}

// CreateLeague creates a league from {name, startDate, endDate, playerIds}.
func (h *Handler) CreateLeague(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req domainleagues.CreateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	l, err := h.svc.Leagues.Create(r.Context(), credentials(r), req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusCreated, l, h.logger)
}

// LeagueMatches returns a league's matches grouped into rounds and annotated with deadline status.
func (h *Handler) LeagueMatches(w nethttp.ResponseWriter, r *nethttp.Request) {
	schedule, err := h.svc.Leagues.Matches(r.Context(), credentials(r), idParam(r, "leagueID"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, schedule, h.logger)
}

// LeagueStandings ranks the players of one league.
func (h *Handler) LeagueStandings(w nethttp.ResponseWriter, r *nethttp.Request) {
	ranked, err := h.svc.Leagues.Standings(r.Context(), credentials(r), idParam(r, "leagueID"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, ranked, h.logger)
}

// GenerateMatches asks the league API to generate the league's rounds and returns the new schedule.
func (h *Handler) GenerateMatches(w nethttp.ResponseWriter, r *nethttp.Request) {
	leagueID := idParam(r, "leagueID")
	ms, err := h.svc.Matches.Generate(r.Context(), credentials(r), leagueID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusCreated, h.schedule(leagueID, ms), h.logger)
}
