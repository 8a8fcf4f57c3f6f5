package metrics

import (
	"errors"
	"testing"
)

func TestOutcomeLabels(t *testing.T) {
	if errorOutcome(nil) != OutcomeOK || errorOutcome(errors.New("boom")) != OutcomeError {
		t.Fatalf("unexpected error outcomes")
	}
	if buildOutcome(0) != OutcomeComplete || buildOutcome(2) != OutcomePartial {
		t.Fatalf("unexpected build outcomes")
	}
}
