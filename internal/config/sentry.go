package config

// SentryConfig controls error reporting for failed mutations. An empty DSN disables it.
type SentryConfig struct {
	DSN         string
	Environment string
}

func loadSentry() SentryConfig {
	return SentryConfig{
		DSN:         envOrDefault(envSentryDSN, ""),
		Environment: envOrDefault(envSentryEnv, "development"),
	}
}
