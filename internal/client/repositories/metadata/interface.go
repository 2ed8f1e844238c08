package metadata

import (
	"context"
)

// Repository is a small key/value store for client-side state such as the
// persisted session token. Get reports common.ErrorNotFound for absent keys.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
