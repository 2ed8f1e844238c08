// Package questions stores question documents together with their
// embedded responses and favorites.
package questions

import (
	"context"

	"github.com/dmitrijs2005/qaboard/internal/server/models"
)

// Repository persists questions as whole documents. Save replaces the
// stored document, so concurrent writers resolve as last-writer-wins.
// Get, Save and Delete return common.ErrorNotFound for unknown ids.
type Repository interface {
	Create(ctx context.Context, q *models.Question) (*models.Question, error)
	Get(ctx context.Context, id string) (*models.Question, error)
	// List returns every question, newest first.
	List(ctx context.Context) ([]*models.Question, error)
	// Save assigns ids to embedded responses and favorites that have none.
	Save(ctx context.Context, q *models.Question) error
	Delete(ctx context.Context, id string) error
}

func assignEmbeddedIDs(q *models.Question, newID func() string) {
	for i := range q.Responses {
		if q.Responses[i].ID == "" {
			q.Responses[i].ID = newID()
		}
	}
	for i := range q.Favorites {
		if q.Favorites[i].ID == "" {
			q.Favorites[i].ID = newID()
		}
	}
}
