package testutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var signingKey = []byte("test-signing-key")

// SignToken signs claims with a throwaway HS256 key. The console never verifies signatures, so
// the key only needs to produce a well-formed JWT.
func SignToken(t testing.TB, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

// AdminToken returns an unexpired JWT carrying the admin role.
func AdminToken(t testing.TB) string {
	t.Helper()
	return SignToken(t, jwt.MapClaims{
		"sub":  "admin@elevenpool",
		"role": "ADMIN",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
}

// PlayerToken returns an unexpired JWT without the admin role.
func PlayerToken(t testing.TB) string {
	t.Helper()
	return SignToken(t, jwt.MapClaims{
		"sub":  "player@elevenpool",
		"role": "PLAYER",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
}

// ExpiredToken returns an admin JWT that expired an hour ago.
func ExpiredToken(t testing.TB) string {
	t.Helper()
	return SignToken(t, jwt.MapClaims{
		"sub":  "admin@elevenpool",
		"role": "ADMIN",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
}
