package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestNetworkErrorString(t *testing.T) {
	err := &NetworkError{Method: http.MethodPut, Path: "/matches/result/4", StatusCode: 500, Message: "boom"}
	if got := err.Error(); !strings.Contains(got, "status=500") || !strings.Contains(got, "/matches/result/4") {
		t.Fatalf("expected status and path in error string, got %q", got)
	}

	noStatus := &NetworkError{Method: http.MethodGet, Path: "/leagues", Err: context.DeadlineExceeded}
	if got := noStatus.Error(); !strings.Contains(got, "deadline exceeded") {
		t.Fatalf("expected wrapped message, got %q", got)
	}
	if !errors.Is(noStatus, context.DeadlineExceeded) {
		t.Fatalf("expected Unwrap to expose cause")
	}
	if got := (&NetworkError{}).Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestNetworkErrorMatchesSessionSentinels(t *testing.T) {
	wrapped := fmt.Errorf("loading leagues: %w", &NetworkError{StatusCode: http.StatusUnauthorized})
	if !errors.Is(wrapped, ErrSessionInvalid) {
		t.Fatalf("expected 401 to match ErrSessionInvalid")
	}
	if errors.Is(wrapped, ErrForbidden) {
		t.Fatalf("401 must not match ErrForbidden")
	}
	if !errors.Is(&NetworkError{StatusCode: http.StatusForbidden}, ErrForbidden) {
		t.Fatalf("expected 403 to match ErrForbidden")
	}

	nErr, ok := AsNetworkError(wrapped)
	if !ok || nErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected to unwrap network error, got %+v", nErr)
	}
}

func TestRetryableClassification(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{&NetworkError{StatusCode: 0}, true},
		{&NetworkError{StatusCode: 429}, true},
		{&NetworkError{StatusCode: 503}, true},
		{&NetworkError{StatusCode: 400}, false},
		{&NetworkError{StatusCode: 401}, false},
		{errors.New("plain"), false},
	}
	for _, tc := range cases {
		if got := retryable(tc.err); got != tc.want {
			t.Fatalf("retryable(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
