package matches

import (
	"errors"
	"fmt"
)

// RefreshError means the league API accepted a mutation but re-reading the league's matches
// failed. The write is not rolled back; callers must treat it as applied.
type RefreshError struct {
	Action string
	Err    error
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("%s applied, refresh failed: %v", e.Action, e.Err)
}

func (e *RefreshError) Unwrap() error { return e.Err }

// AsRefreshError reports whether err carries a RefreshError.
func AsRefreshError(err error) (*RefreshError, bool) {
	var rErr *RefreshError
	if errors.As(err, &rErr) {
		return rErr, true
	}
	return nil, false
}
