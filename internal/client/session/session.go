package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/qaboard/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/qaboard/internal/common"
	"github.com/dmitrijs2005/qaboard/internal/jwtx"
	"github.com/dmitrijs2005/qaboard/internal/logging"
)

// Listener is called after every state transition with the new state.
type Listener func(State)

// Session owns the current State and the persisted token.
type Session struct {
	repo   metadata.Repository
	logger logging.Logger
	now    func() time.Time

	mu        sync.Mutex
	state     State
	listeners []Listener
}

func New(repo metadata.Repository, logger logging.Logger) *Session {
	return &Session{repo: repo, logger: logger, now: time.Now}
}

// Init restores the session from the stored token. A token that cannot be
// decoded or whose exp has passed is deleted and the session starts logged
// out. The signature is not checked; the server does that on every call.
func (s *Session) Init(ctx context.Context) error {
	token, err := s.repo.Get(ctx, common.TokenMetadataKey)
	if errors.Is(err, common.ErrorNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	claims, err := jwtx.Decode(token)
	if err != nil || claims.Expired(s.now()) {
		s.logger.Info(ctx, "discarding stored token", "expired", err == nil)
		return s.repo.Delete(ctx, common.TokenMetadataKey)
	}

	s.dispatch(Login{Payload: Identity{
		ID:       claims.Identity.ID,
		Email:    claims.Email,
		UserName: claims.UserName,
		Token:    token,
	}})
	return nil
}

// Login persists the token and logs the user in.
func (s *Session) Login(ctx context.Context, id Identity) error {
	if err := s.repo.Set(ctx, common.TokenMetadataKey, id.Token); err != nil {
		return err
	}
	s.dispatch(Login{Payload: id})
	return nil
}

// Register is Login for a freshly created account.
func (s *Session) Register(ctx context.Context, id Identity) error {
	if err := s.repo.Set(ctx, common.TokenMetadataKey, id.Token); err != nil {
		return err
	}
	s.dispatch(Register{Payload: id})
	return nil
}

// Logout forgets the token. The state is cleared even if the delete fails.
func (s *Session) Logout(ctx context.Context) error {
	err := s.repo.Delete(ctx, common.TokenMetadataKey)
	s.dispatch(Logout{})
	return err
}

func (s *Session) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers l for future transitions.
func (s *Session) Subscribe(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

func (s *Session) dispatch(a Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	state := s.state
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
}
