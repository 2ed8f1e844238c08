package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/qaboard/internal/client/models"
	"github.com/dmitrijs2005/qaboard/internal/common"
)

func TestAuthService_LoginStartsSessionAndSetsToken(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{user: &models.User{ID: "u1", UserName: "ann", Email: "a@b.c", Token: "tok"}}
	s, repo := newSession(t)
	svc := NewAuthService(fc, s)

	id, err := svc.Login(ctx, "ann", []byte("pw"))
	require.NoError(t, err)

	assert.Equal(t, "ann", id.UserName)
	assert.Equal(t, []string{"login:ann:pw"}, fc.calls)
	assert.Equal(t, "tok", fc.token)
	assert.True(t, svc.Current().LoggedIn())

	stored, err := repo.Get(ctx, common.TokenMetadataKey)
	require.NoError(t, err)
	assert.Equal(t, "tok", stored)
}

func TestAuthService_LoginFailureLeavesSessionAlone(t *testing.T) {
	fc := &fakeClient{userErr: common.NewValidationError("Invalid username", map[string]string{"general": "Username is not found"})}
	s, _ := newSession(t)
	svc := NewAuthService(fc, s)

	_, err := svc.Login(context.Background(), "ghost", []byte("pw"))

	require.ErrorIs(t, err, common.ErrorValidation)
	assert.False(t, svc.Current().LoggedIn())
	assert.Empty(t, fc.token)
}

func TestAuthService_RegisterThenLogout(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{user: &models.User{ID: "u2", UserName: "bob", Token: "t2"}}
	s, repo := newSession(t)
	svc := NewAuthService(fc, s)

	_, err := svc.Register(ctx, models.RegisterInput{UserName: "bob", Email: "b@c.d", Password: "p", ConfirmPassword: "p"})
	require.NoError(t, err)
	assert.Equal(t, "t2", fc.token)

	require.NoError(t, svc.Logout(ctx))

	assert.Empty(t, fc.token)
	assert.False(t, svc.Current().LoggedIn())
	_, err = repo.Get(ctx, common.TokenMetadataKey)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAuthService_InitWithNothingStored(t *testing.T) {
	s, _ := newSession(t)
	svc := NewAuthService(&fakeClient{}, s)

	require.NoError(t, svc.Init(context.Background()))
	assert.False(t, svc.Current().LoggedIn())
}
