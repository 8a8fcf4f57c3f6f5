package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("upstream-secret"))
	require.NoError(t, err)
	return tok
}

func TestFromHeader(t *testing.T) {
	c, err := FromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", c.Token)
	assert.Equal(t, "Bearer abc.def", c.Bearer())

	c, err = FromHeader("bearer   xyz ")
	require.NoError(t, err)
	assert.Equal(t, "xyz", c.Token)

	for _, h := range []string{"", "Basic foo", "Bearer ", "Bearer"} {
		_, err := FromHeader(h)
		assert.ErrorIs(t, err, ErrMissingToken, "header %q", h)
	}
	assert.Equal(t, "", Credentials{}.Bearer())
}

func TestInspectAcceptsAdmin(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	tok := signed(t, jwt.MapClaims{
		"sub":  "admin@league",
		"role": "ADMIN",
		"exp":  now.Add(time.Hour).Unix(),
	})

	claims, err := Inspect(Credentials{Token: tok}, now)
	require.NoError(t, err)
	assert.Equal(t, "admin@league", claims.Subject)
	assert.True(t, claims.HasRoles)
}

func TestInspectSpringAuthorities(t *testing.T) {
	tok := signed(t, jwt.MapClaims{
		"authorities": []any{map[string]any{"authority": "ROLE_ADMIN"}},
	})
	_, err := Inspect(Credentials{Token: tok}, time.Now())
	assert.NoError(t, err)
}

func TestInspectRejectsExpiredAndNonAdmin(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	expired := signed(t, jwt.MapClaims{"role": "ADMIN", "exp": now.Add(-time.Minute).Unix()})
	_, err := Inspect(Credentials{Token: expired}, now)
	assert.True(t, errors.Is(err, ErrTokenExpired), "got %v", err)

	player := signed(t, jwt.MapClaims{"roles": []any{"PLAYER"}, "exp": now.Add(time.Hour).Unix()})
	_, err = Inspect(Credentials{Token: player}, now)
	assert.True(t, errors.Is(err, ErrNotAdmin), "got %v", err)
}

func TestInspectPassesOpaqueTokens(t *testing.T) {
	claims, err := Inspect(Credentials{Token: "opaque-session-token"}, time.Now())
	require.NoError(t, err)
	assert.False(t, claims.HasRoles)

	noRoles := signed(t, jwt.MapClaims{"sub": "svc"})
	_, err = Inspect(Credentials{Token: noRoles}, time.Now())
	assert.NoError(t, err, "the upstream decides when no role claim is present")

	_, err = Inspect(Credentials{}, time.Now())
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestContextRoundTrip(t *testing.T) {
	ctx := WithCredentials(context.Background(), Credentials{Token: "t"})
	c, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "t", c.Token)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}
