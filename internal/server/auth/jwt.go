// Package auth issues and verifies credentials, hashes passwords and
// guards resolvers that need an authenticated caller.
package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/qaboard/internal/common"
	"github.com/dmitrijs2005/qaboard/internal/jwtx"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenValidity is how long an issued credential stays valid.
const DefaultTokenValidity = 6 * time.Hour

// TokenCodec signs and verifies HS256 credentials with a server secret.
type TokenCodec struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

func NewTokenCodec(secret []byte, validity time.Duration) *TokenCodec {
	if validity <= 0 {
		validity = DefaultTokenValidity
	}
	return &TokenCodec{secret: secret, validity: validity, now: time.Now}
}

// Issue returns a signed credential for id, expiring after the validity period.
func (c *TokenCodec) Issue(id jwtx.Identity) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtx.Claims{
		Identity: id,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(c.now().Add(c.validity)),
		},
	})

	s, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

// Verify checks signature, algorithm and expiry. Every failure is reported
// as common.ErrInvalidToken, with the library error wrapped alongside.
func (c *TokenCodec) Verify(tokenString string) (*jwtx.Identity, error) {
	claims := &jwtx.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	id := claims.Identity
	return &id, nil
}
