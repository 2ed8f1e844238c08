package client

import (
	"context"

	"github.com/dmitrijs2005/qaboard/internal/client/models"
)

// Client is the qaboard API as seen by the terminal client.
type Client interface {
	SetToken(token string)
	Register(ctx context.Context, in models.RegisterInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	Questions(ctx context.Context) ([]models.Question, error)
	Question(ctx context.Context, id string) (*models.Question, error)
	CreateQuestion(ctx context.Context, body string) (*models.Question, error)
	DeleteQuestion(ctx context.Context, id string) (string, error)
	CreateResponse(ctx context.Context, questionID, body string) (*models.Question, error)
	DeleteResponse(ctx context.Context, questionID, responseID string) (*models.Question, error)
	FavoriteQuestion(ctx context.Context, questionID string) (*models.Question, error)
}
