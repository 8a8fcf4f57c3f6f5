package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the console.
type Config struct {
	Port      string
	Provider  string
	Timezone  string
	Version   string
	LeagueAPI LeagueAPIConfig
	Dashboard DashboardConfig
	Metrics   MetricsConfig
	Sentry    SentryConfig
	Logging   LoggingConfig
}

// Load reads configuration from environment variables with sensible defaults. A .env file in the
// working directory is applied first when present; variables already set win.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:      envOrDefault(envPort, defaultPort),
		Provider:  lowerEnvOrDefault(envProvider, defaultProvider),
		Timezone:  envOrDefault(envTimezone, ""),
		Version:   envOrDefault(envVersion, defaultVersion),
		LeagueAPI: loadLeagueAPI(),
		Dashboard: loadDashboard(),
		Metrics:   loadMetrics(),
		Sentry:    loadSentry(),
		Logging:   loadLogging(),
	}
}
