package domain

import (
	"fmt"
	"testing"
)

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("scorePlayer1", "score is required")
	if err.Error() != "scorePlayer1: score is required" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	bare := &ValidationError{Message: "players must be different"}
	if bare.Error() != "players must be different" {
		t.Fatalf("unexpected message %q", bare.Error())
	}
}

func TestInvalidStateErrorMessage(t *testing.T) {
	err := &InvalidStateError{State: "COMPLETED", Action: "reschedule", Message: "cannot reschedule a completed match"}
	want := "cannot reschedule a COMPLETED match: cannot reschedule a completed match"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestAsHelpersUnwrap(t *testing.T) {
	wrapped := fmt.Errorf("record result: %w", NewValidationError("scorePlayer2", "must be >= 0"))
	if vErr, ok := AsValidationError(wrapped); !ok || vErr.Field != "scorePlayer2" {
		t.Fatalf("expected wrapped validation error, got %v", wrapped)
	}
	if _, ok := AsInvalidStateError(wrapped); ok {
		t.Fatal("did not expect invalid state error")
	}

	stateErr := fmt.Errorf("forfeit: %w", &InvalidStateError{State: "FORFEITED", Action: "forfeit"})
	if sErr, ok := AsInvalidStateError(stateErr); !ok || sErr.State != "FORFEITED" {
		t.Fatalf("expected wrapped invalid state error, got %v", stateErr)
	}
}
