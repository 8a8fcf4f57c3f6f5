package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envTimezone        = "TIMEZONE"
	envVersion         = "APP_VERSION"
	envBaseURL         = "LEAGUE_API_BASE_URL"
	envAPITimeout      = "LEAGUE_API_TIMEOUT"
	envMaxConcurrency  = "LEAGUE_API_MAX_CONCURRENCY"
	envRetryAttempts   = "LEAGUE_API_RETRY_ATTEMPTS"
	envRetryBackoff    = "LEAGUE_API_RETRY_BACKOFF"
	envServiceToken    = "LEAGUE_API_SERVICE_TOKEN"
	envRefreshInterval = "DASHBOARD_REFRESH_INTERVAL"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envSentryDSN       = "SENTRY_DSN"
	envSentryEnv       = "SENTRY_ENVIRONMENT"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"

	defaultPort     = "4000"
	defaultProvider = "leagueapi"
	defaultVersion  = "dev"
	defaultBaseURL  = "http://localhost:2020/api/v1"
	defaultTimeout  = 10 * Duration(time.Second)
	// Per-league fan-out width; keeps a large league list from flooding the API.
	defaultMaxConcurrency = 4
	defaultRetryAttempts  = 3
	defaultRetryBackoff   = 200 * Duration(time.Millisecond)
	// Matches the console's dashboard polling cadence.
	defaultRefreshInterval = 30 * Duration(time.Second)
	defaultMetricsPort     = "9090"
	defaultServiceName     = "league-console"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
)
