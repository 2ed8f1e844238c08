// Package users stores registered accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/qaboard/internal/server/models"
)

// Repository persists users. GetUserByLogin returns common.ErrorNotFound
// when no user has that username.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}
