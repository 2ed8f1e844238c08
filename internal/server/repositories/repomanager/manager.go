// Package repomanager opens the configured store and vends its repositories.
package repomanager

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/qaboard/internal/server/repositories/questions"
	"github.com/dmitrijs2005/qaboard/internal/server/repositories/users"
)

// RepositoryManager owns a store connection.
type RepositoryManager interface {
	// RunMigrations creates the initial schema (tables or indexes).
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Questions() questions.Repository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// NewRepositoryManager picks the backend from the DSN scheme:
// mongodb/mongodb+srv, postgres/postgresql, or memory.
func NewRepositoryManager(ctx context.Context, dsn, dbName string) (RepositoryManager, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database dsn: %w", err)
	}

	switch u.Scheme {
	case "mongodb", "mongodb+srv":
		return NewMongoRepositoryManager(ctx, dsn, dbName)
	case "postgres", "postgresql":
		return OpenPostgresRepositoryManager(ctx, dsn)
	case "memory":
		return NewInMemoryRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", u.Scheme)
	}
}
