// Package auth carries the admin's bearer token from the inbound request to every league API call.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingToken is returned when the request carries no bearer token.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrTokenExpired is returned for a JWT whose exp claim has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrNotAdmin is returned for a JWT that carries role claims without the admin role.
	ErrNotAdmin = errors.New("admin role required")
)

// AdminRole is the role name the league API grants administrators.
const AdminRole = "ADMIN"

// Credentials is the caller's bearer token. It is passed explicitly to every API-calling function.
type Credentials struct {
	Token string
}

// Bearer returns the Authorization header value, or "" when there is no token.
func (c Credentials) Bearer() string {
	if c.Token == "" {
		return ""
	}
	return "Bearer " + c.Token
}

// IsZero reports whether no token is present.
func (c Credentials) IsZero() bool {
	return c.Token == ""
}

// FromHeader extracts credentials from an Authorization header value.
func FromHeader(header string) (Credentials, error) {
	header = strings.TrimSpace(header)
	if len(header) < 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return Credentials{}, ErrMissingToken
	}
	token := strings.TrimSpace(header[7:])
	if token == "" {
		return Credentials{}, ErrMissingToken
	}
	return Credentials{Token: token}, nil
}

// Claims is what the console reads from a JWT without verifying it. The league API owns the
// signing key and remains the authority; this only short-circuits requests that would fail there.
type Claims struct {
	Subject   string
	Roles     []string
	ExpiresAt time.Time
	HasRoles  bool
}

// Inspect decodes token claims and rejects expired or non-admin JWTs. Opaque (non-JWT) tokens
// return zero Claims and no error.
func Inspect(c Credentials, now time.Time) (Claims, error) {
	if c.IsZero() {
		return Claims{}, ErrMissingToken
	}
	if strings.Count(c.Token, ".") != 2 {
		return Claims{}, nil
	}

	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.Token, mc); err != nil {
		return Claims{}, nil
	}

	var claims Claims
	claims.Subject, _ = mc.GetSubject()
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
		if !now.Before(exp.Time) {
			return claims, ErrTokenExpired
		}
	}

	claims.Roles, claims.HasRoles = roleClaims(mc)
	if claims.HasRoles && !hasAdmin(claims.Roles) {
		return claims, ErrNotAdmin
	}
	return claims, nil
}

func roleClaims(mc jwt.MapClaims) ([]string, bool) {
	var roles []string
	found := false
	for _, key := range []string{"role", "roles", "authorities"} {
		raw, ok := mc[key]
		if !ok {
			continue
		}
		found = true
		switch v := raw.(type) {
		case string:
			roles = append(roles, strings.Split(v, ",")...)
		case []any:
			for _, item := range v {
				switch r := item.(type) {
				case string:
					roles = append(roles, r)
				case map[string]any:
					if s, ok := r["authority"].(string); ok {
						roles = append(roles, s)
					}
				}
			}
		}
	}
	return roles, found
}

func hasAdmin(roles []string) bool {
	for _, r := range roles {
		r = strings.ToUpper(strings.TrimSpace(r))
		if r == AdminRole || r == "ROLE_"+AdminRole {
			return true
		}
	}
	return false
}

type credentialsKey struct{}

// WithCredentials stores credentials on the context for handlers downstream of the auth middleware.
func WithCredentials(ctx context.Context, c Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, c)
}

// FromContext returns credentials stored by WithCredentials.
func FromContext(ctx context.Context) (Credentials, bool) {
	if ctx == nil {
		return Credentials{}, false
	}
	c, ok := ctx.Value(credentialsKey{}).(Credentials)
	return c, ok
}
