package handlers

import (
	"context"
	nethttp "net/http"

	appleagues "github.com/elevenpool/league-console/internal/app/leagues"
	"github.com/elevenpool/league-console/internal/auth"
	"github.com/elevenpool/league-console/internal/domain"
	domainmatches "github.com/elevenpool/league-console/internal/domain/matches"
	"github.com/elevenpool/league-console/internal/logging"
)

type resultBody struct {
	ScorePlayer1 *int `json:"scorePlayer1"`
	ScorePlayer2 *int `json:"scorePlayer2"`
}

type scheduleBody struct {
	NewDate string `json:"newDate"`
}

type deadlineBody struct {
	DeadlineDate string `json:"deadlineDate"`
}

type forfeitBody struct {
	ForfeitingPlayerID domain.ID `json:"forfeitingPlayerId"`
	Reason             string    `json:"reason"`
}

// matchAction is a lifecycle transition applied to a freshly read match.
type matchAction func(ctx context.Context, creds auth.Credentials, m domainmatches.Match) ([]domainmatches.Match, error)

// CreateMatch schedules a single match by hand and returns the league's refreshed schedule.
func (h *Handler) CreateMatch(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req domainmatches.CreateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	ms, err := h.svc.Matches.Create(r.Context(), credentials(r), req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusCreated, h.schedule(req.LeagueID, ms), h.logger)
}

// OverdueMatches lists unresolved matches past their deadline across all leagues.
func (h *Handler) OverdueMatches(w nethttp.ResponseWriter, r *nethttp.Request) {
	ms, err := h.svc.Matches.Overdue(r.Context(), credentials(r))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	if ms == nil {
		ms = []domainmatches.Match{}
	}
	writeJSON(w, nethttp.StatusOK, ms, h.logger)
}

// RecordResult records {scorePlayer1, scorePlayer2} for a match.
func (h *Handler) RecordResult(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body resultBody
	if err := decodeBody(w, r, &body); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	h.applyToMatch(w, r, func(ctx context.Context, creds auth.Credentials, m domainmatches.Match) ([]domainmatches.Match, error) {
		return h.svc.Matches.RecordResult(ctx, creds, m, body.ScorePlayer1, body.ScorePlayer2)
	})
}

// Reschedule moves a match to {newDate}.
func (h *Handler) Reschedule(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body scheduleBody
	if err := decodeBody(w, r, &body); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	h.applyToMatch(w, r, func(ctx context.Context, creds auth.Credentials, m domainmatches.Match) ([]domainmatches.Match, error) {
		return h.svc.Matches.Reschedule(ctx, creds, m, body.NewDate)
	})
}

// SetDeadline sets {deadlineDate} on a match.
func (h *Handler) SetDeadline(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body deadlineBody
	if err := decodeBody(w, r, &body); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	h.applyToMatch(w, r, func(ctx context.Context, creds auth.Credentials, m domainmatches.Match) ([]domainmatches.Match, error) {
		return h.svc.Matches.SetDeadline(ctx, creds, m, body.DeadlineDate)
	})
}

// RemoveDeadline clears a match's deadline.
func (h *Handler) RemoveDeadline(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.applyToMatch(w, r, h.svc.Matches.RemoveDeadline)
}

// Forfeit awards a match to the opponent of {forfeitingPlayerId}.
func (h *Handler) Forfeit(w nethttp.ResponseWriter, r *nethttp.Request) {
	var body forfeitBody
	if err := decodeBody(w, r, &body); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	h.applyToMatch(w, r, func(ctx context.Context, creds auth.Credentials, m domainmatches.Match) ([]domainmatches.Match, error) {
		return h.svc.Matches.Forfeit(ctx, creds, m, body.ForfeitingPlayerID, body.Reason)
	})
}

// applyToMatch reads the addressed match fresh, applies action, and answers with the league's
// refreshed schedule.
func (h *Handler) applyToMatch(w nethttp.ResponseWriter, r *nethttp.Request, action matchAction) {
	ctx := r.Context()
	creds := credentials(r)
	leagueID := idParam(r, "leagueID")
	matchID := idParam(r, "matchID")

	m, err := h.svc.Matches.Lookup(ctx, creds, leagueID, matchID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	ms, err := action(ctx, creds, m)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "match updated",
		logging.FieldLeagueID, leagueID.String(),
		logging.FieldMatchID, matchID.String(),
	)
	writeJSON(w, nethttp.StatusOK, h.schedule(leagueID, ms), h.logger)
}

func (h *Handler) schedule(leagueID domain.ID, ms []domainmatches.Match) appleagues.Schedule {
	return appleagues.BuildSchedule(leagueID, ms, h.svc.Matches.Today())
}
