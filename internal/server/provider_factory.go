package server

import (
	"log/slog"

	"github.com/elevenpool/league-console/internal/config"
	"github.com/elevenpool/league-console/internal/metrics"
	"github.com/elevenpool/league-console/internal/providers"
)

// backend splits the league API into a read path with shared wrappers and an unwrapped write path.
type backend struct {
	name   string
	reader providers.Reader
	writer providers.Writer
}

// providerFactory assembles the backend with shared wrappers (concurrency limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) backend {
	return f.wrap(cfg, selectAPI(cfg, f.logger, f.metrics))
}

// wrap bounds concurrent reads and retries transient read failures. Writes are never retried.
func (f providerFactory) wrap(cfg config.Config, api providers.LeagueAPI) backend {
	limited := providers.NewLimitedReader(api, cfg.LeagueAPI.MaxConcurrency, f.logger)
	return backend{
		name:   normalizeProviderName(cfg.Provider),
		reader: providers.NewRetryingReader(limited, f.logger, cfg.LeagueAPI.RetryAttempts, cfg.LeagueAPI.RetryBackoff),
		writer: api,
	}
}
