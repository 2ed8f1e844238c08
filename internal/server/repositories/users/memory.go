package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/qaboard/internal/common"
	"github.com/dmitrijs2005/qaboard/internal/server/models"
	"github.com/google/uuid"
)

// InMemoryRepository keeps users in a slice. Used by tests and memory:// DSNs.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = uuid.NewString()
	r.users = append(r.users, *user)
	return user, nil
}

// GetUserByLogin returns the first user registered under login.
func (r *InMemoryRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.UserName == login {
			found := u
			return &found, nil
		}
	}
	return nil, common.ErrorNotFound
}
