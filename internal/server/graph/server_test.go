package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/qaboard/internal/logging"
	"github.com/dmitrijs2005/qaboard/internal/server/auth"
	"github.com/dmitrijs2005/qaboard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/qaboard/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gqlError struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	m := repomanager.NewInMemoryRepositoryManager()
	codec := auth.NewTokenCodec([]byte("test-secret"), time.Hour)
	log := logging.NewNopLogger()

	r := NewResolver(services.NewUserService(m, codec), services.NewQuestionService(m), auth.NewGuard(codec), log)
	return NewHTTPServer(":0", "*", NewSchema(r), m, log)
}

func do(t *testing.T, s *HTTPServer, token, query string, vars map[string]any) gqlResponse {
	t.Helper()
	body, err := json.Marshal(map[string]any{"query": query, "variables": vars})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out gqlResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

const registerMutation = `mutation($u: String!, $e: String!, $p: String!, $c: String!) {
	register(registerInput: {username: $u, email: $e, password: $p, confirmPassword: $c}) { id username email token createdAt }
}`

func register(t *testing.T, s *HTTPServer, name string) string {
	t.Helper()
	out := do(t, s, "", registerMutation, map[string]any{"u": name, "e": name + "@example.com", "p": "pw", "c": "pw"})
	require.Empty(t, out.Errors)

	var data struct {
		Register struct {
			Token string `json:"token"`
		} `json:"register"`
	}
	require.NoError(t, json.Unmarshal(out.Data, &data))
	require.NotEmpty(t, data.Register.Token)
	return data.Register.Token
}

func TestGraphQL_RegisterValidationErrors(t *testing.T) {
	s := newTestServer(t)

	out := do(t, s, "", registerMutation, map[string]any{"u": "", "e": "", "p": "pw", "c": "other"})
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "Errors", out.Errors[0].Message)
	assert.Equal(t, CodeBadUserInput, out.Errors[0].Extensions["code"])
	assert.Equal(t, map[string]any{
		"username":        "User field is empty",
		"email":           "Email field is empty",
		"confirmPassword": "Your passwords do not match with each other",
	}, out.Errors[0].Extensions["errors"])
}

func TestGraphQL_MutationsRequireAuth(t *testing.T) {
	s := newTestServer(t)

	out := do(t, s, "", `mutation { createQuestion(body: "hi") { id } }`, nil)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, CodeUnauthenticated, out.Errors[0].Extensions["code"])

	out = do(t, s, "garbage", `mutation { createQuestion(body: "hi") { id } }`, nil)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "Token is invalid", out.Errors[0].Message)

	list := do(t, s, "", `{ getQuestions { id } }`, nil)
	assert.Empty(t, list.Errors, "queries are public")
}

func TestGraphQL_QuestionLifecycle(t *testing.T) {
	s := newTestServer(t)
	aliceToken := register(t, s, "alice")
	bobToken := register(t, s, "bob")

	out := do(t, s, aliceToken, `mutation { createQuestion(body: "What is Go?") { id username responseCount favoriteCount } }`, nil)
	require.Empty(t, out.Errors)
	var created struct {
		CreateQuestion struct {
			ID            string `json:"id"`
			Username      string `json:"username"`
			ResponseCount int    `json:"responseCount"`
			FavoriteCount int    `json:"favoriteCount"`
		} `json:"createQuestion"`
	}
	require.NoError(t, json.Unmarshal(out.Data, &created))
	qid := created.CreateQuestion.ID
	assert.Equal(t, "alice", created.CreateQuestion.Username)

	out = do(t, s, bobToken, `mutation($q: String!) { createResponse(questionId: $q, body: "A language") { responses { id username body } responseCount } }`,
		map[string]any{"q": qid})
	require.Empty(t, out.Errors)
	var responded struct {
		CreateResponse struct {
			Responses []struct {
				ID       string `json:"id"`
				Username string `json:"username"`
			} `json:"responses"`
			ResponseCount int `json:"responseCount"`
		} `json:"createResponse"`
	}
	require.NoError(t, json.Unmarshal(out.Data, &responded))
	require.Equal(t, 1, responded.CreateResponse.ResponseCount)
	rid := responded.CreateResponse.Responses[0].ID

	out = do(t, s, bobToken, `mutation($q: ID!) { favoriteQuestion(questionId: $q) { favoriteCount favorites { username } } }`,
		map[string]any{"q": qid})
	require.Empty(t, out.Errors)
	assert.JSONEq(t, `{"favoriteQuestion":{"favoriteCount":1,"favorites":[{"username":"bob"}]}}`, string(out.Data))

	out = do(t, s, aliceToken, `mutation($q: ID!, $r: ID!) { deleteResponse(questionId: $q, responseId: $r) { id } }`,
		map[string]any{"q": qid, "r": rid})
	require.Len(t, out.Errors, 1)
	assert.Equal(t, CodeForbidden, out.Errors[0].Extensions["code"])

	out = do(t, s, bobToken, `mutation($q: ID!) { deleteQuestion(questionId: $q) }`, map[string]any{"q": qid})
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "Action not allowed", out.Errors[0].Message)

	out = do(t, s, "", `query($q: ID!) { getQuestion(questionId: $q) { body responseCount favoriteCount } }`, map[string]any{"q": qid})
	require.Empty(t, out.Errors)
	assert.JSONEq(t, `{"getQuestion":{"body":"What is Go?","responseCount":1,"favoriteCount":1}}`, string(out.Data))

	out = do(t, s, aliceToken, `mutation($q: ID!) { deleteQuestion(questionId: $q) }`, map[string]any{"q": qid})
	require.Empty(t, out.Errors)
	assert.JSONEq(t, `{"deleteQuestion":"Question has been deleted"}`, string(out.Data))

	out = do(t, s, "", `query($q: ID!) { getQuestion(questionId: $q) { id } }`, map[string]any{"q": qid})
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "Question not found", out.Errors[0].Message)
	assert.Equal(t, CodeNotFound, out.Errors[0].Extensions["code"])
}

func TestGraphQL_LoginFailure(t *testing.T) {
	s := newTestServer(t)
	register(t, s, "alice")

	out := do(t, s, "", `mutation { login(username: "alice", password: "wrong") { token } }`, nil)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "Please check your username or password", out.Errors[0].Message)
	assert.Equal(t, map[string]any{"general": "Credentials are wrong"}, out.Errors[0].Extensions["errors"])
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	s.store = stubPinger{err: errors.New("no route to host")}
	resp, err = s.app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
