package http

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/elevenpool/league-console/internal/http/handlers"
	"github.com/elevenpool/league-console/internal/http/middleware"
	"github.com/elevenpool/league-console/internal/metrics"
)

// NewRouter registers the console routes. Everything under /api requires an admin bearer token.
func NewRouter(h *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder, now func() time.Time) nethttp.Handler {
	if now == nil {
		now = time.Now
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logging(logger, recorder))
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(recorder, now))

		r.Get("/dashboard", h.Dashboard)

		r.Route("/leagues", func(r chi.Router) {
			r.Get("/", h.ListLeagues)
			r.Post("/", h.CreateLeague)
			r.Route("/{leagueID}", func(r chi.Router) {
				r.Get("/matches", h.LeagueMatches)
				r.Get("/standings", h.LeagueStandings)
				r.Post("/generate", h.GenerateMatches)
				r.Route("/matches/{matchID}", func(r chi.Router) {
					r.Put("/result", h.RecordResult)
					r.Put("/schedule", h.Reschedule)
					r.Put("/deadline", h.SetDeadline)
					r.Delete("/deadline", h.RemoveDeadline)
					r.Post("/forfeit", h.Forfeit)
				})
			})
		})

		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.ListPlayers)
			r.Post("/", h.CreatePlayer)
			r.Get("/rankings", h.PlayerRankings)
			r.Get("/{playerID}/matches", h.PlayerMatches)
		})

		r.Post("/matches", h.CreateMatch)
		r.Get("/matches/overdue", h.OverdueMatches)
	})
	return r
}
