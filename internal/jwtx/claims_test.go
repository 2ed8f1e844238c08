package jwtx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims Claims, key string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

func TestDecode_ReadsWithoutSecret(t *testing.T) {
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	tok := sign(t, Claims{
		Identity:         Identity{ID: "u1", Email: "a@b.c", UserName: "alice"},
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
	}, "server-only")

	c, err := Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", c.UserName)
	assert.Equal(t, "u1", c.Identity.ID)
	assert.Equal(t, "a@b.c", c.Email)
	assert.True(t, c.ExpiresAt.Time.Equal(exp))
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode("definitely-not-a-token")
	assert.Error(t, err)
}

func TestExpired(t *testing.T) {
	now := time.Now()
	c := &Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute))}}
	assert.False(t, c.Expired(now))
	assert.True(t, c.Expired(now.Add(2*time.Minute)))
	assert.True(t, (&Claims{}).Expired(now))
}
