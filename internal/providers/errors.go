package providers

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrProviderUnavailable is returned when no upstream is wired.
	ErrProviderUnavailable = errors.New("league api unavailable")
	// ErrSessionInvalid matches a 401 from the league API.
	ErrSessionInvalid = errors.New("session invalid")
	// ErrForbidden matches a 403 from the league API.
	ErrForbidden = errors.New("forbidden")
)

// NetworkError captures a failed league API call. StatusCode is 0 when no response arrived.
type NetworkError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Err        error
}

func (e *NetworkError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = "request failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("league api %s %s: %s (status=%d)", e.Method, e.Path, msg, e.StatusCode)
	}
	return fmt.Sprintf("league api %s %s: %s", e.Method, e.Path, msg)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is lets callers test for the session sentinels with errors.Is.
func (e *NetworkError) Is(target error) bool {
	switch target {
	case ErrSessionInvalid:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	default:
		return false
	}
}

// Temporary reports whether the failure is worth retrying for an idempotent read:
// transport failures without a response, 429 and 5xx.
func (e *NetworkError) Temporary() bool {
	if e.StatusCode == 0 {
		return true
	}
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var nErr *NetworkError
	if errors.As(err, &nErr) {
		return nErr, true
	}
	return nil, false
}

// retryable reports whether a read that failed with err may be attempted again.
func retryable(err error) bool {
	nErr, ok := AsNetworkError(err)
	if !ok {
		return false
	}
	return nErr.Temporary()
}
