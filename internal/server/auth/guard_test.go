package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/qaboard/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_Authenticate(t *testing.T) {
	codec := NewTokenCodec([]byte("k"), time.Hour)
	tok, err := codec.Issue(alice)
	require.NoError(t, err)

	g := NewGuard(codec)

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{"missing header", "", common.ErrMissingAuth},
		{"no bearer prefix", "Token " + tok, common.ErrMissingAuth},
		{"empty token", "Bearer ", common.ErrMissingAuth},
		{"garbage token", "Bearer abc.def.ghi", common.ErrInvalidToken},
		{"valid", "Bearer " + tok, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := g.Authenticate(tt.header)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice", id.UserName)
		})
	}
}

func TestGuard_FromContext(t *testing.T) {
	codec := NewTokenCodec([]byte("k"), time.Hour)
	tok, err := codec.Issue(alice)
	require.NoError(t, err)
	g := NewGuard(codec)

	_, err = g.FromContext(context.Background())
	assert.ErrorIs(t, err, common.ErrMissingAuth)

	ctx := WithAuthorization(context.Background(), "Bearer "+tok)
	assert.Equal(t, "Bearer "+tok, AuthorizationFromContext(ctx))
	id, err := g.FromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u-1", id.ID)
}
