package config

// DashboardConfig controls the background dashboard refresh.
type DashboardConfig struct {
	RefreshInterval Duration
}

func loadDashboard() DashboardConfig {
	return DashboardConfig{
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
	}
}
