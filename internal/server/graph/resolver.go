// Package graph serves the GraphQL API: schema, resolvers and the HTTP
// server hosting them.
package graph

import (
	"context"

	"github.com/dmitrijs2005/qaboard/internal/jwtx"
	"github.com/dmitrijs2005/qaboard/internal/logging"
	"github.com/dmitrijs2005/qaboard/internal/server/models"
	"github.com/dmitrijs2005/qaboard/internal/server/services"
	graphql "github.com/graph-gophers/graphql-go"
)

type userService interface {
	Register(ctx context.Context, in services.RegisterInput) (*services.AuthResult, error)
	Login(ctx context.Context, userName, password string) (*services.AuthResult, error)
}

type questionService interface {
	List(ctx context.Context) ([]*models.Question, error)
	Get(ctx context.Context, id string) (*models.Question, error)
	Create(ctx context.Context, caller *jwtx.Identity, body string) (*models.Question, error)
	Delete(ctx context.Context, caller *jwtx.Identity, id string) (string, error)
	CreateResponse(ctx context.Context, caller *jwtx.Identity, questionID, body string) (*models.Question, error)
	DeleteResponse(ctx context.Context, caller *jwtx.Identity, questionID, responseID string) (*models.Question, error)
	ToggleFavorite(ctx context.Context, caller *jwtx.Identity, questionID string) (*models.Question, error)
}

type authenticator interface {
	FromContext(ctx context.Context) (*jwtx.Identity, error)
}

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	users     userService
	questions questionService
	guard     authenticator
	logger    logging.Logger
}

func NewResolver(us userService, qs questionService, g authenticator, l logging.Logger) *Resolver {
	return &Resolver{users: us, questions: qs, guard: g, logger: l.With("module", "graphql")}
}

// NewSchema parses the schema and binds it to r.
func NewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r)
}

func (r *Resolver) fail(ctx context.Context, err error) error {
	return toAPIError(ctx, r.logger, err)
}

// Queries

func (r *Resolver) GetQuestions(ctx context.Context) (*[]*questionResolver, error) {
	list, err := r.questions.List(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	out := make([]*questionResolver, 0, len(list))
	for _, q := range list {
		out = append(out, &questionResolver{q: q})
	}
	return &out, nil
}

func (r *Resolver) GetQuestion(ctx context.Context, args struct{ QuestionID graphql.ID }) (*questionResolver, error) {
	q, err := r.questions.Get(ctx, string(args.QuestionID))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &questionResolver{q: q}, nil
}

// Mutations

type registerInput struct {
	Username        string
	Password        string
	ConfirmPassword string
	Email           string
}

func (r *Resolver) Register(ctx context.Context, args struct{ RegisterInput *registerInput }) (*userResolver, error) {
	in := services.RegisterInput{}
	if args.RegisterInput != nil {
		in = services.RegisterInput{
			UserName:        args.RegisterInput.Username,
			Email:           args.RegisterInput.Email,
			Password:        args.RegisterInput.Password,
			ConfirmPassword: args.RegisterInput.ConfirmPassword,
		}
	}

	res, err := r.users.Register(ctx, in)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &userResolver{u: res.User, token: res.Token}, nil
}

func (r *Resolver) Login(ctx context.Context, args struct{ Username, Password string }) (*userResolver, error) {
	res, err := r.users.Login(ctx, args.Username, args.Password)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &userResolver{u: res.User, token: res.Token}, nil
}

func (r *Resolver) CreateQuestion(ctx context.Context, args struct{ Body string }) (*questionResolver, error) {
	caller, err := r.guard.FromContext(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	q, err := r.questions.Create(ctx, caller, args.Body)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &questionResolver{q: q}, nil
}

func (r *Resolver) DeleteQuestion(ctx context.Context, args struct{ QuestionID graphql.ID }) (string, error) {
	caller, err := r.guard.FromContext(ctx)
	if err != nil {
		return "", r.fail(ctx, err)
	}

	msg, err := r.questions.Delete(ctx, caller, string(args.QuestionID))
	if err != nil {
		return "", r.fail(ctx, err)
	}
	return msg, nil
}

func (r *Resolver) CreateResponse(ctx context.Context, args struct {
	QuestionID string
	Body       string
}) (*questionResolver, error) {
	caller, err := r.guard.FromContext(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	q, err := r.questions.CreateResponse(ctx, caller, args.QuestionID, args.Body)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &questionResolver{q: q}, nil
}

func (r *Resolver) DeleteResponse(ctx context.Context, args struct {
	QuestionID graphql.ID
	ResponseID graphql.ID
}) (*questionResolver, error) {
	caller, err := r.guard.FromContext(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	q, err := r.questions.DeleteResponse(ctx, caller, string(args.QuestionID), string(args.ResponseID))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &questionResolver{q: q}, nil
}

func (r *Resolver) FavoriteQuestion(ctx context.Context, args struct{ QuestionID graphql.ID }) (*questionResolver, error) {
	caller, err := r.guard.FromContext(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	q, err := r.questions.ToggleFavorite(ctx, caller, string(args.QuestionID))
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	return &questionResolver{q: q}, nil
}
