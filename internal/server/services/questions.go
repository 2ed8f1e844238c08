package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/qaboard/internal/common"
	"github.com/dmitrijs2005/qaboard/internal/jwtx"
	"github.com/dmitrijs2005/qaboard/internal/server/models"
	"github.com/dmitrijs2005/qaboard/internal/server/repositories/repomanager"
)

const QuestionDeletedMessage = "Question has been deleted"

// QuestionService handles questions and their embedded responses and
// favorites. Every mutation is a read-modify-write of the whole document
// without locking; the last write wins.
type QuestionService struct {
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewQuestionService(m repomanager.RepositoryManager) *QuestionService {
	return &QuestionService{repomanager: m, now: time.Now}
}

// List returns all questions, newest first.
func (s *QuestionService) List(ctx context.Context) ([]*models.Question, error) {
	list, err := s.repomanager.Questions().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing questions: %w", err)
	}
	return list, nil
}

func (s *QuestionService) Get(ctx context.Context, id string) (*models.Question, error) {
	q, err := s.repomanager.Questions().Get(ctx, id)
	if err != nil {
		return nil, questionError(err)
	}
	return q, nil
}

func (s *QuestionService) Create(ctx context.Context, caller *jwtx.Identity, body string) (*models.Question, error) {
	if strings.TrimSpace(body) == "" {
		return nil, common.NewValidationError("Question body is not allowed to be empty", map[string]string{
			"body": "Question body is not allowed to be empty",
		})
	}

	q, err := s.repomanager.Questions().Create(ctx, &models.Question{
		UserID:    caller.ID,
		UserName:  caller.UserName,
		Body:      body,
		CreatedAt: s.now(),
		Responses: []models.Response{},
		Favorites: []models.Favorite{},
	})
	if err != nil {
		return nil, fmt.Errorf("error creating question: %w", err)
	}
	return q, nil
}

// Delete removes a question owned by the caller.
func (s *QuestionService) Delete(ctx context.Context, caller *jwtx.Identity, id string) (string, error) {
	repo := s.repomanager.Questions()

	q, err := repo.Get(ctx, id)
	if err != nil {
		return "", questionError(err)
	}
	if q.UserName != caller.UserName {
		return "", common.ErrorForbidden
	}

	if err := repo.Delete(ctx, id); err != nil {
		return "", questionError(err)
	}
	return QuestionDeletedMessage, nil
}

// CreateResponse puts a new response at the front of the question's list.
func (s *QuestionService) CreateResponse(ctx context.Context, caller *jwtx.Identity, questionID, body string) (*models.Question, error) {
	if strings.TrimSpace(body) == "" {
		return nil, common.NewValidationError("Empty response", map[string]string{
			"body": "Response body must not empty",
		})
	}

	return s.update(ctx, questionID, func(q *models.Question) error {
		r := models.Response{UserName: caller.UserName, Body: body, CreatedAt: s.now()}
		q.Responses = append([]models.Response{r}, q.Responses...)
		return nil
	})
}

// DeleteResponse removes a response owned by the caller.
func (s *QuestionService) DeleteResponse(ctx context.Context, caller *jwtx.Identity, questionID, responseID string) (*models.Question, error) {
	return s.update(ctx, questionID, func(q *models.Question) error {
		i := q.ResponseIndex(responseID)
		if i < 0 {
			return common.ErrResponseNotFound
		}
		if q.Responses[i].UserName != caller.UserName {
			return common.ErrorForbidden
		}
		q.Responses = append(q.Responses[:i], q.Responses[i+1:]...)
		return nil
	})
}

// ToggleFavorite removes the caller's favorite if present, otherwise adds one.
func (s *QuestionService) ToggleFavorite(ctx context.Context, caller *jwtx.Identity, questionID string) (*models.Question, error) {
	return s.update(ctx, questionID, func(q *models.Question) error {
		if i := q.FavoriteIndex(caller.UserName); i >= 0 {
			q.Favorites = append(q.Favorites[:i], q.Favorites[i+1:]...)
			return nil
		}
		q.Favorites = append(q.Favorites, models.Favorite{UserName: caller.UserName, CreatedAt: s.now()})
		return nil
	})
}

func (s *QuestionService) update(ctx context.Context, id string, mutate func(q *models.Question) error) (*models.Question, error) {
	repo := s.repomanager.Questions()

	q, err := repo.Get(ctx, id)
	if err != nil {
		return nil, questionError(err)
	}
	if err := mutate(q); err != nil {
		return nil, err
	}
	if err := repo.Save(ctx, q); err != nil {
		return nil, questionError(err)
	}
	return q, nil
}

func questionError(err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrQuestionNotFound
	}
	return fmt.Errorf("error accessing questions: %w", err)
}
