package handlers

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/elevenpool/league-console/internal/app/dashboard"
	appleagues "github.com/elevenpool/league-console/internal/app/leagues"
	appmatches "github.com/elevenpool/league-console/internal/app/matches"
	appplayers "github.com/elevenpool/league-console/internal/app/players"
	"github.com/elevenpool/league-console/internal/auth"
	"github.com/elevenpool/league-console/internal/domain"
	"github.com/elevenpool/league-console/internal/poller"
	"github.com/elevenpool/league-console/internal/store"
)

// Services groups the application services the console routes call into.
type Services struct {
	Dashboard *dashboard.Service
	Latest    *store.Latest[dashboard.Summary]
	Leagues   *appleagues.Service
	Players   *appplayers.Service
	Matches   *appmatches.Service
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	svc      Services
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil when no poller runs.
func NewHandler(svc Services, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// credentials returns the caller's token placed on the context by the auth middleware,
// falling back to the Authorization header for handlers mounted without it.
func credentials(r *nethttp.Request) auth.Credentials {
	if c, ok := auth.FromContext(r.Context()); ok {
		return c
	}
	c, _ := auth.FromHeader(r.Header.Get("Authorization"))
	return c
}

func idParam(r *nethttp.Request, name string) domain.ID {
	return domain.ID(chi.URLParam(r, name))
}

// NotFound answers unknown routes with the JSON error shape.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes called with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}
