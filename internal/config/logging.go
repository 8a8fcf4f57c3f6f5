package config

// LoggingConfig selects the log level and handler format.
type LoggingConfig struct {
	Level  string
	Format string
}

func loadLogging() LoggingConfig {
	return LoggingConfig{
		Level:  lowerEnvOrDefault(envLogLevel, defaultLogLevel),
		Format: lowerEnvOrDefault(envLogFormat, defaultLogFormat),
	}
}
