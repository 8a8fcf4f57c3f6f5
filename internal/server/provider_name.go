package server

import "strings"

const (
	providerLeagueAPI = "leagueapi"
	providerFixture   = "fixture"
)

// normalizeProviderName lower-cases the configured backend name, defaulting to the league API.
// Used across server wiring and the provider factory to keep naming consistent in logs.
func normalizeProviderName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return providerLeagueAPI
	}
	return name
}
