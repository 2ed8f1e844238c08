// Package services implements the query and mutation handlers behind the
// GraphQL resolvers.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/qaboard/internal/common"
	"github.com/dmitrijs2005/qaboard/internal/jwtx"
	"github.com/dmitrijs2005/qaboard/internal/server/auth"
	"github.com/dmitrijs2005/qaboard/internal/server/models"
	"github.com/dmitrijs2005/qaboard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/qaboard/internal/server/validation"
)

type tokenIssuer interface {
	Issue(id jwtx.Identity) (string, error)
}

// AuthResult is a user together with a freshly issued credential.
type AuthResult struct {
	User  *models.User
	Token string
}

type RegisterInput struct {
	UserName        string
	Email           string
	Password        string
	ConfirmPassword string
}

type UserService struct {
	repomanager repomanager.RepositoryManager
	issuer      tokenIssuer
	now         func() time.Time
}

func NewUserService(m repomanager.RepositoryManager, issuer tokenIssuer) *UserService {
	return &UserService{repomanager: m, issuer: issuer, now: time.Now}
}

// Register validates the input, rejects taken usernames and creates the
// user. The uniqueness check and the insert are not atomic.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	res := validation.ValidateRegistration(in.UserName, in.Email, in.Password, in.ConfirmPassword)
	if !res.Valid {
		return nil, common.NewValidationError("Errors", res.Errors)
	}

	repo := s.repomanager.Users()

	_, err := repo.GetUserByLogin(ctx, in.UserName)
	switch {
	case err == nil:
		return nil, common.NewValidationError("Username is taken", map[string]string{
			"username": "This username is already taken",
		})
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := repo.Create(ctx, &models.User{
		UserName:  in.UserName,
		Email:     in.Email,
		Password:  hash,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.withToken(user)
}

func (s *UserService) Login(ctx context.Context, userName, password string) (*AuthResult, error) {
	res := validation.ValidateLogin(userName, password)
	if !res.Valid {
		return nil, common.NewValidationError("Errors", res.Errors)
	}

	user, err := s.repomanager.Users().GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.NewValidationError("Invalid username", map[string]string{
				"general": "Username is not found",
			})
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if err := auth.ComparePasswordAndHash(password, user.Password); err != nil {
		if errors.Is(err, auth.ErrMismatchedHashAndPassword) {
			return nil, common.NewValidationError("Please check your username or password", map[string]string{
				"general": "Credentials are wrong",
			})
		}
		return nil, fmt.Errorf("error checking password: %w", err)
	}

	return s.withToken(user)
}

func (s *UserService) withToken(user *models.User) (*AuthResult, error) {
	token, err := s.issuer.Issue(jwtx.Identity{ID: user.ID, Email: user.Email, UserName: user.UserName})
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}
