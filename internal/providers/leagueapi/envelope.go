package leagueapi

import (
	"bytes"
	"encoding/json"
	"strings"
)

// unwrapData strips up to two {"data": ...} envelopes. Some league API routes wrap their payload
// in a response object and the HTTP layer wraps that again.
func unwrapData(raw []byte) []byte {
	current := bytes.TrimSpace(raw)
	for depth := 0; depth < maxEnvelopeDepth; depth++ {
		if len(current) == 0 || current[0] != '{' {
			return current
		}
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(current, &envelope); err != nil {
			return current
		}
		inner, ok := envelope["data"]
		inner = bytes.TrimSpace(inner)
		if !ok || len(inner) == 0 || bytes.Equal(inner, []byte("null")) {
			return current
		}
		current = inner
	}
	return current
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// errorMessage extracts a human-readable message from an error response body.
func errorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Message != "" {
			return eb.Message
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	return strings.TrimSpace(string(body))
}
