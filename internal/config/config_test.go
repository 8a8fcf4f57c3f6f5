package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.LeagueAPI.BaseURL != defaultBaseURL {
		t.Fatalf("expected default base url %s, got %s", defaultBaseURL, cfg.LeagueAPI.BaseURL)
	}
	if cfg.LeagueAPI.MaxConcurrency != defaultMaxConcurrency {
		t.Fatalf("expected default concurrency %d, got %d", defaultMaxConcurrency, cfg.LeagueAPI.MaxConcurrency)
	}
	if cfg.LeagueAPI.ServiceToken != "" {
		t.Fatalf("expected empty service token by default, got %s", cfg.LeagueAPI.ServiceToken)
	}
	if cfg.Dashboard.RefreshInterval != 30*time.Second {
		t.Fatalf("expected 30s refresh interval, got %s", cfg.Dashboard.RefreshInterval)
	}
	if cfg.Metrics.ServiceName != "league-console" {
		t.Fatalf("expected league-console service name, got %s", cfg.Metrics.ServiceName)
	}
	if cfg.Sentry.DSN != "" {
		t.Fatalf("expected sentry disabled by default")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envTimezone, "Africa/Kigali")
	t.Setenv(envBaseURL, "http://league.example.com/api/v1/")
	t.Setenv(envMaxConcurrency, "8")
	t.Setenv(envRetryAttempts, "5")
	t.Setenv(envServiceToken, "svc-token")
	t.Setenv(envRefreshInterval, "45s")
	t.Setenv(envSentryDSN, "https://key@o0.ingest.sentry.io/1")
	t.Setenv(envLogLevel, "DEBUG")
	t.Setenv(envLogFormat, "JSON")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider fixture, got %s", cfg.Provider)
	}
	if cfg.Timezone != "Africa/Kigali" {
		t.Fatalf("expected timezone override, got %s", cfg.Timezone)
	}
	if cfg.LeagueAPI.BaseURL != "http://league.example.com/api/v1" {
		t.Fatalf("expected trailing slash trimmed, got %s", cfg.LeagueAPI.BaseURL)
	}
	if cfg.LeagueAPI.MaxConcurrency != 8 || cfg.LeagueAPI.RetryAttempts != 5 {
		t.Fatalf("unexpected league api limits: %+v", cfg.LeagueAPI)
	}
	if cfg.LeagueAPI.ServiceToken != "svc-token" {
		t.Fatalf("expected service token override, got %s", cfg.LeagueAPI.ServiceToken)
	}
	if cfg.Dashboard.RefreshInterval != 45*time.Second {
		t.Fatalf("expected refresh interval 45s, got %s", cfg.Dashboard.RefreshInterval)
	}
	if cfg.Sentry.DSN == "" {
		t.Fatalf("expected sentry dsn override")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("expected lowercased logging overrides, got %+v", cfg.Logging)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envRefreshInterval, "not-a-duration")

	cfg := Load()

	if cfg.Dashboard.RefreshInterval != defaultRefreshInterval {
		t.Fatalf("expected default refresh interval on invalid value, got %s", cfg.Dashboard.RefreshInterval)
	}
}

func TestLoadNonPositiveValuesFallBack(t *testing.T) {
	t.Setenv(envRefreshInterval, "0s")
	t.Setenv(envMaxConcurrency, "0")

	cfg := Load()

	if cfg.Dashboard.RefreshInterval != defaultRefreshInterval {
		t.Fatalf("expected default refresh interval on non-positive value, got %s", cfg.Dashboard.RefreshInterval)
	}
	if cfg.LeagueAPI.MaxConcurrency != defaultMaxConcurrency {
		t.Fatalf("expected default concurrency on non-positive value, got %d", cfg.LeagueAPI.MaxConcurrency)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LEAGUE_API_SERVICE_TOKEN=from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Cleanup(func() { _ = os.Unsetenv(envServiceToken) })

	cfg := Load()

	if cfg.LeagueAPI.ServiceToken != "from-dotenv" {
		t.Fatalf("expected token from .env, got %q", cfg.LeagueAPI.ServiceToken)
	}
}
