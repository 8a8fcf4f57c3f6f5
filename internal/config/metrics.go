package config

import "strings"

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

// Addr is the listen address of the Prometheus scrape server.
func (m MetricsConfig) Addr() string {
	return ":" + m.Port
}

func loadMetrics() MetricsConfig {
	endpoint, insecure := otlpEndpoint(envOrDefault(envOtelEndpoint, ""))
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: endpoint,
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, insecure),
	}
}

// otlpEndpoint accepts either host:port or a full URL, since collectors are
// often configured with the URL form. The exporter wants host:port.
func otlpEndpoint(raw string) (string, bool) {
	switch {
	case strings.HasPrefix(raw, "https://"):
		return strings.TrimRight(strings.TrimPrefix(raw, "https://"), "/"), false
	case strings.HasPrefix(raw, "http://"):
		return strings.TrimRight(strings.TrimPrefix(raw, "http://"), "/"), true
	default:
		return raw, true
	}
}
