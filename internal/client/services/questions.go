package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/qaboard/internal/client/client"
	"github.com/dmitrijs2005/qaboard/internal/client/models"
	"github.com/dmitrijs2005/qaboard/internal/client/session"
)

// ErrLoginRequired is returned by protected operations when there is no
// session, or when the server rejected the session's credential.
var ErrLoginRequired = errors.New("you need to log in first")

// QuestionService covers the board itself. Reads are public; everything
// that writes needs a session.
type QuestionService interface {
	List(ctx context.Context) ([]models.Question, error)
	Get(ctx context.Context, id string) (*models.Question, error)
	Ask(ctx context.Context, body string) (*models.Question, error)
	Delete(ctx context.Context, id string) (string, error)
	Respond(ctx context.Context, questionID, body string) (*models.Question, error)
	Unrespond(ctx context.Context, questionID, responseID string) (*models.Question, error)
	ToggleFavorite(ctx context.Context, questionID string) (*models.Question, error)
}

type questionService struct {
	client  client.Client
	session *session.Session
}

func NewQuestionService(c client.Client, s *session.Session) QuestionService {
	return &questionService{client: c, session: s}
}

func (s *questionService) List(ctx context.Context) ([]models.Question, error) {
	return s.client.Questions(ctx)
}

func (s *questionService) Get(ctx context.Context, id string) (*models.Question, error) {
	return s.client.Question(ctx, id)
}

func (s *questionService) Ask(ctx context.Context, body string) (*models.Question, error) {
	return protected(ctx, s, func() (*models.Question, error) {
		return s.client.CreateQuestion(ctx, body)
	})
}

func (s *questionService) Delete(ctx context.Context, id string) (string, error) {
	return protected(ctx, s, func() (string, error) {
		return s.client.DeleteQuestion(ctx, id)
	})
}

func (s *questionService) Respond(ctx context.Context, questionID, body string) (*models.Question, error) {
	return protected(ctx, s, func() (*models.Question, error) {
		return s.client.CreateResponse(ctx, questionID, body)
	})
}

func (s *questionService) Unrespond(ctx context.Context, questionID, responseID string) (*models.Question, error) {
	return protected(ctx, s, func() (*models.Question, error) {
		return s.client.DeleteResponse(ctx, questionID, responseID)
	})
}

func (s *questionService) ToggleFavorite(ctx context.Context, questionID string) (*models.Question, error) {
	return protected(ctx, s, func() (*models.Question, error) {
		return s.client.FavoriteQuestion(ctx, questionID)
	})
}

// protected runs call only with a session. A credential the server no
// longer accepts ends the session.
func protected[T any](ctx context.Context, s *questionService, call func() (T, error)) (T, error) {
	var zero T
	if !s.session.Current().LoggedIn() {
		return zero, ErrLoginRequired
	}

	res, err := call()
	if errors.Is(err, client.ErrUnauthorized) {
		_ = s.session.Logout(ctx)
		return zero, fmt.Errorf("%w: %w", ErrLoginRequired, err)
	}
	return res, err
}
