// Package jwtx holds the credential payload shared by the server (which
// signs and verifies it) and the client (which only reads it).
package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is who a credential speaks for.
type Identity struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserName string `json:"username"`
}

// Claims is the JWT body: the identity plus the registered exp claim.
// Both embedded structs have an ID field, so use Identity.ID explicitly.
type Claims struct {
	Identity
	jwt.RegisteredClaims
}

// Decode parses a token without checking its signature. The client uses
// it to read the identity and the expiry; it must never be used to
// authorize anything.
func Decode(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// Expired reports whether the claims carry an exp at or before now.
// Tokens without exp are treated as expired.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return true
	}
	return !now.Before(c.ExpiresAt.Time)
}
