package server

import (
	"log/slog"
	"net/http"

	"github.com/elevenpool/league-console/internal/config"
	"github.com/elevenpool/league-console/internal/logging"
	"github.com/elevenpool/league-console/internal/metrics"
	"github.com/elevenpool/league-console/internal/providers"
	"github.com/elevenpool/league-console/internal/providers/fixture"
	"github.com/elevenpool/league-console/internal/providers/leagueapi"
)

func selectAPI(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.LeagueAPI {
	switch name := normalizeProviderName(cfg.Provider); name {
	case providerLeagueAPI:
		return leagueapi.NewClient(leagueapi.Config{
			BaseURL:    cfg.LeagueAPI.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.LeagueAPI.Timeout},
			Logger:     logger,
			Metrics:    recorder,
		})
	case providerFixture:
		return fixture.New()
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", logging.FieldProvider, name)
		return fixture.New()
	}
}
