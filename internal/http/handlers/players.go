package handlers

import (
	nethttp "net/http"

	"github.com/elevenpool/league-console/internal/domain"
	domainplayers "github.com/elevenpool/league-console/internal/domain/players"
)

// ListPlayers returns every registered player.
func (h *Handler) ListPlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	ps, err := h.svc.Players.List(r.Context(), credentials(r))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, ps, h.logger)
}

// CreatePlayer registers a player from {name, phone}.
func (h *Handler) CreatePlayer(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req domainplayers.CreateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	p, err := h.svc.Players.Create(r.Context(), credentials(r), req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusCreated, p, h.logger)
}

// PlayerRankings returns the global leaderboard.
func (h *Handler) PlayerRankings(w nethttp.ResponseWriter, r *nethttp.Request) {
	ranked, err := h.svc.Players.Rankings(r.Context(), credentials(r))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, ranked, h.logger)
}

// PlayerMatches returns one player's match history, narrowed by ?filter= or ?league=.
func (h *Handler) PlayerMatches(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	history, err := h.svc.Players.History(r.Context(), credentials(r),
		idParam(r, "playerID"), q.Get("filter"), domain.ID(q.Get("league")))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, history, h.logger)
}
