package leagueapi

import "time"

const (
	providerName       = "leagueapi"
	defaultBaseURL     = "http://localhost:2020/api/v1"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 512
	maxEnvelopeDepth   = 2
)
