package timeutil

import (
	"errors"
	"fmt"
)

// FormatError reports a date value that is neither a [year, month, day] tuple nor an ISO date string.
type FormatError struct {
	Input  any
	Reason string
}

func (e *FormatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("malformed date %v", e.Input)
	}
	return fmt.Sprintf("malformed date %v: %s", e.Input, e.Reason)
}

// AsFormatError attempts to unwrap an error into a FormatError.
func AsFormatError(err error) (*FormatError, bool) {
	var fmtErr *FormatError
	if errors.As(err, &fmtErr) {
		return fmtErr, true
	}
	return nil, false
}
