package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/qaboard/internal/server/auth"
	"github.com/dmitrijs2005/qaboard/internal/server/models"
	"github.com/dmitrijs2005/qaboard/internal/server/repositories/questions"
	"github.com/dmitrijs2005/qaboard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/qaboard/internal/server/repositories/users"
)

// countingUsersRepo records calls so tests can assert nothing reached the store.
type countingUsersRepo struct {
	users.Repository
	calls int
	err   error
}

func (r *countingUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.Repository.Create(ctx, u)
}

func (r *countingUsersRepo) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.Repository.GetUserByLogin(ctx, login)
}

type fakeRepoManager struct {
	*repomanager.InMemoryRepositoryManager
	users     users.Repository
	questions questions.Repository
}

func (m *fakeRepoManager) Users() users.Repository {
	if m.users != nil {
		return m.users
	}
	return m.InMemoryRepositoryManager.Users()
}

func (m *fakeRepoManager) Questions() questions.Repository {
	if m.questions != nil {
		return m.questions
	}
	return m.InMemoryRepositoryManager.Questions()
}

func newCodec() *auth.TokenCodec {
	return auth.NewTokenCodec([]byte("test-secret"), time.Hour)
}
