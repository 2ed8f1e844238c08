package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/qaboard/internal/client/client"
	"github.com/dmitrijs2005/qaboard/internal/client/models"
	"github.com/dmitrijs2005/qaboard/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/qaboard/internal/client/session"
	"github.com/dmitrijs2005/qaboard/internal/logging"
)

// fakeClient implements client.Client for the service tests.
type fakeClient struct {
	token string
	calls []string

	user    *models.User
	userErr error

	question    *models.Question
	questions   []models.Question
	questionErr error
	deleteMsg   string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) SetToken(token string) { f.token = token }

func (f *fakeClient) Register(_ context.Context, in models.RegisterInput) (*models.User, error) {
	f.calls = append(f.calls, "register:"+in.UserName)
	return f.user, f.userErr
}

func (f *fakeClient) Login(_ context.Context, username, password string) (*models.User, error) {
	f.calls = append(f.calls, "login:"+username+":"+password)
	return f.user, f.userErr
}

func (f *fakeClient) Questions(context.Context) ([]models.Question, error) {
	f.calls = append(f.calls, "questions")
	return f.questions, f.questionErr
}

func (f *fakeClient) Question(_ context.Context, id string) (*models.Question, error) {
	f.calls = append(f.calls, "question:"+id)
	return f.question, f.questionErr
}

func (f *fakeClient) CreateQuestion(_ context.Context, body string) (*models.Question, error) {
	f.calls = append(f.calls, "createQuestion:"+body)
	return f.question, f.questionErr
}

func (f *fakeClient) DeleteQuestion(_ context.Context, id string) (string, error) {
	f.calls = append(f.calls, "deleteQuestion:"+id)
	return f.deleteMsg, f.questionErr
}

func (f *fakeClient) CreateResponse(_ context.Context, questionID, body string) (*models.Question, error) {
	f.calls = append(f.calls, "createResponse:"+questionID+":"+body)
	return f.question, f.questionErr
}

func (f *fakeClient) DeleteResponse(_ context.Context, questionID, responseID string) (*models.Question, error) {
	f.calls = append(f.calls, "deleteResponse:"+questionID+":"+responseID)
	return f.question, f.questionErr
}

func (f *fakeClient) FavoriteQuestion(_ context.Context, questionID string) (*models.Question, error) {
	f.calls = append(f.calls, "favorite:"+questionID)
	return f.question, f.questionErr
}

// newSession returns a session over a fresh in-memory SQLite database.
func newSession(t *testing.T) (*session.Session, metadata.Repository) {
	t.Helper()
	db, err := client.OpenDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := metadata.NewSQLiteRepository(db)
	return session.New(repo, logging.NewNopLogger()), repo
}
