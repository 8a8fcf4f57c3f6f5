package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports a client-side precondition that failed before any API call was made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// InvalidStateError reports a transition that the match's current lifecycle state does not permit.
type InvalidStateError struct {
	State   string
	Action  string
	Message string
}

func (e *InvalidStateError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "transition not permitted"
	}
	if e.State == "" {
		return fmt.Sprintf("cannot %s: %s", e.Action, msg)
	}
	return fmt.Sprintf("cannot %s a %s match: %s", e.Action, e.State, msg)
}

// AsValidationError attempts to unwrap an error into a ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// AsInvalidStateError attempts to unwrap an error into an InvalidStateError.
func AsInvalidStateError(err error) (*InvalidStateError, bool) {
	var sErr *InvalidStateError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}
