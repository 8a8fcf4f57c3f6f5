package handlers

import (
	nethttp "net/http"

	"github.com/elevenpool/league-console/internal/app/dashboard"
	"github.com/elevenpool/league-console/internal/logging"
)

// Dashboard builds the cross-league summary. With ?cached=true it serves the poller's last
// summary instead of calling the league API.
func (h *Handler) Dashboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.URL.Query().Get("cached") == "true" {
		h.cachedDashboard(w, r)
		return
	}

	summary, err := h.svc.Dashboard.Build(r.Context(), credentials(r))
	if err != nil {
		partial, ok := dashboard.AsPartialFailure(err)
		if !ok {
			writeServiceError(w, r, err, h.logger)
			return
		}
		logging.Warn(loggerFromContext(r, h.logger), "dashboard served without some leagues",
			logging.FieldExcluded, len(partial.Failures),
		)
	}
	writeJSON(w, nethttp.StatusOK, summary, h.logger)
}

func (h *Handler) cachedDashboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.svc.Latest == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "dashboard cache disabled", h.logger)
		return
	}
	summary, updated, ok := h.svc.Latest.Get()
	if !ok {
		writeError(w, r, nethttp.StatusServiceUnavailable, "dashboard not built yet", h.logger)
		return
	}
	w.Header().Set("Last-Modified", updated.UTC().Format(nethttp.TimeFormat))
	writeJSON(w, nethttp.StatusOK, summary, h.logger)
}
