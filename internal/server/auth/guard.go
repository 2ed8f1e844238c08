package auth

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/qaboard/internal/common"
	"github.com/dmitrijs2005/qaboard/internal/jwtx"
)

type authorizationKey struct{}

// WithAuthorization stores the raw Authorization header value in ctx.
func WithAuthorization(ctx context.Context, header string) context.Context {
	return context.WithValue(ctx, authorizationKey{}, header)
}

// AuthorizationFromContext returns the header stored by WithAuthorization.
func AuthorizationFromContext(ctx context.Context) string {
	v, _ := ctx.Value(authorizationKey{}).(string)
	return v
}

type tokenVerifier interface {
	Verify(token string) (*jwtx.Identity, error)
}

// Guard turns an Authorization header into a verified identity.
type Guard struct {
	verifier tokenVerifier
}

func NewGuard(v tokenVerifier) *Guard {
	return &Guard{verifier: v}
}

// Authenticate expects "Bearer <token>". A missing header or a missing
// token yields common.ErrMissingAuth; a token that fails verification
// yields common.ErrInvalidToken.
func (g *Guard) Authenticate(header string) (*jwtx.Identity, error) {
	if header == "" {
		return nil, common.ErrMissingAuth
	}

	_, token, found := strings.Cut(header, common.BearerPrefix)
	token = strings.TrimSpace(token)
	if !found || token == "" {
		return nil, common.ErrMissingAuth
	}

	return g.verifier.Verify(token)
}

// FromContext authenticates the header carried by ctx.
func (g *Guard) FromContext(ctx context.Context) (*jwtx.Identity, error) {
	return g.Authenticate(AuthorizationFromContext(ctx))
}
