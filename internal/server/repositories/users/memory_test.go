package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/qaboard/internal/common"
	"github.com/dmitrijs2005/qaboard/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	_, err := repo.GetUserByLogin(ctx, "alice")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	created, err := repo.Create(ctx, &models.User{UserName: "alice", Email: "a@x.io"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := repo.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	got.Email = "mutated"
	again, err := repo.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "a@x.io", again.Email, "returned users are copies")
}
