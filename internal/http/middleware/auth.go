package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/elevenpool/league-console/internal/auth"
	"github.com/elevenpool/league-console/internal/http/requestutil"
	"github.com/elevenpool/league-console/internal/logging"
	"github.com/elevenpool/league-console/internal/metrics"
)

// Session rejection reasons, used as the metrics label.
const (
	ReasonMissingToken = "missing_token"
	ReasonExpired      = "expired"
	ReasonNotAdmin     = "not_admin"
)

// RequireAdmin extracts the bearer token, rejects expired or non-admin JWTs before any upstream
// call, and stores the credentials on the request context.
func RequireAdmin(recorder *metrics.Recorder, now func() time.Time) func(http.Handler) http.Handler {
	if now == nil {
		now = time.Now
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			creds, err := auth.FromHeader(r.Header.Get("Authorization"))
			if err == nil {
				_, err = auth.Inspect(creds, now())
			}
			if err != nil {
				status, reason := rejection(err)
				recorder.RecordSessionRejected(reason)
				logging.Warn(logging.FromContext(r.Context(), nil), "session rejected", "reason", reason)
				writeRejection(w, r, status, err.Error())
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithCredentials(r.Context(), creds)))
		})
	}
}

func rejection(err error) (int, string) {
	switch {
	case errors.Is(err, auth.ErrNotAdmin):
		return http.StatusForbidden, ReasonNotAdmin
	case errors.Is(err, auth.ErrTokenExpired):
		return http.StatusUnauthorized, ReasonExpired
	default:
		return http.StatusUnauthorized, ReasonMissingToken
	}
}

func writeRejection(w http.ResponseWriter, r *http.Request, status int, message string) {
	body := map[string]string{"error": message}
	if reqID := requestutil.RequestIDFromContext(r.Context()); reqID != "" {
		body["requestId"] = reqID
	}
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="league-console"`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("failed to encode response", logging.FieldError, err)
	}
}
