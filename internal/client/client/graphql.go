package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrijs2005/qaboard/internal/client/models"
	"github.com/dmitrijs2005/qaboard/internal/common"
)

const questionFragment = `
fragment questionFields on Question {
	id
	body
	createdAt
	username
	responseCount
	favoriteCount
	responses { id body createdAt username }
	favorites { id createdAt username }
}`

const userFields = `id email username token createdAt`

const (
	registerMutation = `mutation Register($input: RegisterInput) {
	register(registerInput: $input) { ` + userFields + ` }
}`
	loginMutation = `mutation Login($username: String!, $password: String!) {
	login(username: $username, password: $password) { ` + userFields + ` }
}`
	questionsQuery = `query {
	getQuestions { ...questionFields }
}` + questionFragment
	questionQuery = `query GetQuestion($questionId: ID!) {
	getQuestion(questionId: $questionId) { ...questionFields }
}` + questionFragment
	createQuestionMutation = `mutation CreateQuestion($body: String!) {
	createQuestion(body: $body) { ...questionFields }
}` + questionFragment
	deleteQuestionMutation = `mutation DeleteQuestion($questionId: ID!) {
	deleteQuestion(questionId: $questionId)
}`
	createResponseMutation = `mutation CreateResponse($questionId: String!, $body: String!) {
	createResponse(questionId: $questionId, body: $body) { ...questionFields }
}` + questionFragment
	deleteResponseMutation = `mutation DeleteResponse($questionId: ID!, $responseId: ID!) {
	deleteResponse(questionId: $questionId, responseId: $responseId) { ...questionFields }
}` + questionFragment
	favoriteQuestionMutation = `mutation FavoriteQuestion($questionId: ID!) {
	favoriteQuestion(questionId: $questionId) { ...questionFields }
}` + questionFragment
)

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code   string            `json:"code"`
		Errors map[string]string `json:"errors"`
	} `json:"extensions"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// GraphQLClient talks to the qaboard server over HTTP. It is safe for
// concurrent use; the token may be swapped at any time.
type GraphQLClient struct {
	endpointURL string
	httpClient  *http.Client

	mu    sync.RWMutex
	token string
}

func NewGraphQLClient(endpointURL string, timeout time.Duration) *GraphQLClient {
	return &GraphQLClient{
		endpointURL: endpointURL,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// SetToken sets the bearer credential sent with every request. An empty
// token sends no Authorization header.
func (c *GraphQLClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *GraphQLClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do posts one operation and decodes its data member into out. Only the
// first GraphQL error is reported.
func (c *GraphQLClient) do(ctx context.Context, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: vars})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.currentToken(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var gr gqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%w: %s", ErrUnavailable, resp.Status)
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if len(gr.Errors) > 0 {
		return mapError(gr.Errors[0])
	}

	if out == nil || len(gr.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(gr.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

func (c *GraphQLClient) Register(ctx context.Context, in models.RegisterInput) (*models.User, error) {
	var data struct {
		Register models.User `json:"register"`
	}
	if err := c.do(ctx, registerMutation, map[string]any{"input": in}, &data); err != nil {
		return nil, err
	}
	return &data.Register, nil
}

func (c *GraphQLClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	var data struct {
		Login models.User `json:"login"`
	}
	vars := map[string]any{"username": username, "password": password}
	if err := c.do(ctx, loginMutation, vars, &data); err != nil {
		return nil, err
	}
	return &data.Login, nil
}

func (c *GraphQLClient) Questions(ctx context.Context) ([]models.Question, error) {
	var data struct {
		GetQuestions []models.Question `json:"getQuestions"`
	}
	if err := c.do(ctx, questionsQuery, nil, &data); err != nil {
		return nil, err
	}
	return data.GetQuestions, nil
}

func (c *GraphQLClient) Question(ctx context.Context, id string) (*models.Question, error) {
	var data struct {
		GetQuestion *models.Question `json:"getQuestion"`
	}
	if err := c.do(ctx, questionQuery, map[string]any{"questionId": id}, &data); err != nil {
		return nil, err
	}
	if data.GetQuestion == nil {
		return nil, common.ErrQuestionNotFound
	}
	return data.GetQuestion, nil
}

func (c *GraphQLClient) CreateQuestion(ctx context.Context, body string) (*models.Question, error) {
	var data struct {
		CreateQuestion models.Question `json:"createQuestion"`
	}
	if err := c.do(ctx, createQuestionMutation, map[string]any{"body": body}, &data); err != nil {
		return nil, err
	}
	return &data.CreateQuestion, nil
}

func (c *GraphQLClient) DeleteQuestion(ctx context.Context, id string) (string, error) {
	var data struct {
		DeleteQuestion string `json:"deleteQuestion"`
	}
	if err := c.do(ctx, deleteQuestionMutation, map[string]any{"questionId": id}, &data); err != nil {
		return "", err
	}
	return data.DeleteQuestion, nil
}

func (c *GraphQLClient) CreateResponse(ctx context.Context, questionID, body string) (*models.Question, error) {
	var data struct {
		CreateResponse models.Question `json:"createResponse"`
	}
	vars := map[string]any{"questionId": questionID, "body": body}
	if err := c.do(ctx, createResponseMutation, vars, &data); err != nil {
		return nil, err
	}
	return &data.CreateResponse, nil
}

func (c *GraphQLClient) DeleteResponse(ctx context.Context, questionID, responseID string) (*models.Question, error) {
	var data struct {
		DeleteResponse models.Question `json:"deleteResponse"`
	}
	vars := map[string]any{"questionId": questionID, "responseId": responseID}
	if err := c.do(ctx, deleteResponseMutation, vars, &data); err != nil {
		return nil, err
	}
	return &data.DeleteResponse, nil
}

func (c *GraphQLClient) FavoriteQuestion(ctx context.Context, questionID string) (*models.Question, error) {
	var data struct {
		FavoriteQuestion models.Question `json:"favoriteQuestion"`
	}
	if err := c.do(ctx, favoriteQuestionMutation, map[string]any{"questionId": questionID}, &data); err != nil {
		return nil, err
	}
	return &data.FavoriteQuestion, nil
}
