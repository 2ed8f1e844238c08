// Package services contains application services for the qaboard client.
// This file defines the authentication service: register, login and logout
// against the API, with the resulting credential kept in the session.
package services

import (
	"context"

	"github.com/dmitrijs2005/qaboard/internal/client/client"
	"github.com/dmitrijs2005/qaboard/internal/client/models"
	"github.com/dmitrijs2005/qaboard/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Init: restore a previously persisted session.
//   - Register/Login: call the API and, on success, start a session with
//     the returned credential.
//   - Logout: end the session locally; there is no server-side logout.
//   - Current: the session state.
type AuthService interface {
	Init(ctx context.Context) error
	Register(ctx context.Context, in models.RegisterInput) (*session.Identity, error)
	Login(ctx context.Context, username string, password []byte) (*session.Identity, error)
	Logout(ctx context.Context) error
	Current() session.State
}

type authService struct {
	client  client.Client
	session *session.Session
}

// NewAuthService binds the API client to the session so that every
// session change updates the token the client sends.
func NewAuthService(c client.Client, s *session.Session) AuthService {
	s.Subscribe(func(st session.State) {
		if st.User != nil {
			c.SetToken(st.User.Token)
			return
		}
		c.SetToken("")
	})
	return &authService{client: c, session: s}
}

func (a *authService) Init(ctx context.Context) error {
	return a.session.Init(ctx)
}

func (a *authService) Register(ctx context.Context, in models.RegisterInput) (*session.Identity, error) {
	u, err := a.client.Register(ctx, in)
	if err != nil {
		return nil, err
	}

	id := identityOf(u)
	if err := a.session.Register(ctx, id); err != nil {
		return nil, err
	}
	return &id, nil
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (*session.Identity, error) {
	u, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return nil, err
	}

	id := identityOf(u)
	if err := a.session.Login(ctx, id); err != nil {
		return nil, err
	}
	return &id, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

func (a *authService) Current() session.State {
	return a.session.Current()
}

func identityOf(u *models.User) session.Identity {
	return session.Identity{ID: u.ID, Email: u.Email, UserName: u.UserName, Token: u.Token}
}
