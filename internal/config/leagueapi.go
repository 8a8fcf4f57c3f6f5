package config

// LeagueAPIConfig controls how we talk to the league API.
type LeagueAPIConfig struct {
	BaseURL        string
	Timeout        Duration
	MaxConcurrency int
	RetryAttempts  int
	RetryBackoff   Duration
	// ServiceToken lets the background dashboard refresh call the API. Empty disables the refresh.
	ServiceToken string
}

func loadLeagueAPI() LeagueAPIConfig {
	return LeagueAPIConfig{
		BaseURL:        urlEnvOrDefault(envBaseURL, defaultBaseURL),
		Timeout:        durationEnvOrDefault(envAPITimeout, defaultTimeout),
		MaxConcurrency: intEnvOrDefault(envMaxConcurrency, defaultMaxConcurrency),
		RetryAttempts:  intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		RetryBackoff:   durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
		ServiceToken:   envOrDefault(envServiceToken, ""),
	}
}
