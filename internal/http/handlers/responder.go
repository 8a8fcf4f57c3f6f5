package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	appleagues "github.com/elevenpool/league-console/internal/app/leagues"
	appmatches "github.com/elevenpool/league-console/internal/app/matches"
	"github.com/elevenpool/league-console/internal/domain"
	"github.com/elevenpool/league-console/internal/http/requestutil"
	"github.com/elevenpool/league-console/internal/logging"
	"github.com/elevenpool/league-console/internal/providers"
	"github.com/elevenpool/league-console/internal/timeutil"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error     string `json:"error"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"requestId,omitempty"`
	// Applied is set when the league API accepted a mutation whose follow-up read failed.
	Applied       bool `json:"applied,omitempty"`
	RefreshFailed bool `json:"refreshFailed,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", logging.FieldError, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeErrorBody(w, r, status, errorBody{Error: message}, logger)
}

func writeErrorBody(w http.ResponseWriter, r *http.Request, status int, body errorBody, logger *slog.Logger) {
	body.RequestID = requestutil.RequestIDFromContext(r.Context())
	if body.RequestID == "" {
		body.RequestID = r.Header.Get(requestutil.HeaderRequestID)
	}
	writeJSON(w, status, body, logger)
}

// writeServiceError maps an application error onto a status code and JSON error body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status, body := describeError(err)
	if status >= http.StatusInternalServerError {
		logging.Error(loggerFromContext(r, logger), "request failed", err, logging.FieldStatusCode, status)
	}
	writeErrorBody(w, r, status, body, logger)
}

func describeError(err error) (int, errorBody) {
	if rErr, ok := appmatches.AsRefreshError(err); ok {
		return http.StatusAccepted, errorBody{
			Error:         rErr.Action + " applied, reload the league to see the result",
			Applied:       true,
			RefreshFailed: true,
		}
	}
	if vErr, ok := domain.AsValidationError(err); ok {
		return http.StatusBadRequest, errorBody{Error: vErr.Message, Field: vErr.Field}
	}
	if fErr, ok := timeutil.AsFormatError(err); ok {
		return http.StatusBadRequest, errorBody{Error: fErr.Error()}
	}
	if sErr, ok := domain.AsInvalidStateError(err); ok {
		return http.StatusConflict, errorBody{Error: sErr.Error()}
	}
	switch {
	case errors.Is(err, appmatches.ErrMatchNotFound), errors.Is(err, appleagues.ErrLeagueNotFound):
		return http.StatusNotFound, errorBody{Error: err.Error()}
	case errors.Is(err, providers.ErrSessionInvalid):
		return http.StatusUnauthorized, errorBody{Error: "session expired, sign in again"}
	case errors.Is(err, providers.ErrForbidden):
		return http.StatusForbidden, errorBody{Error: "admin role required"}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, errorBody{Error: "league api timed out"}
	}
	if nErr, ok := providers.AsNetworkError(err); ok {
		switch nErr.StatusCode {
		case http.StatusBadRequest, http.StatusNotFound, http.StatusConflict:
			return nErr.StatusCode, errorBody{Error: upstreamMessage(nErr)}
		default:
			return http.StatusBadGateway, errorBody{Error: upstreamMessage(nErr)}
		}
	}
	return http.StatusInternalServerError, errorBody{Error: "internal error"}
}

func upstreamMessage(nErr *providers.NetworkError) string {
	if nErr.Message != "" {
		return nErr.Message
	}
	if nErr.StatusCode == 0 {
		return "league api unreachable"
	}
	return fmt.Sprintf("league api returned %d", nErr.StatusCode)
}

// decodeBody reads a JSON request body into dest; a malformed body is a validation failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dest any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return domain.NewValidationError("", "request body is required")
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dest); err != nil {
		return domain.NewValidationError("", "invalid JSON body: "+err.Error())
	}
	return nil
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
