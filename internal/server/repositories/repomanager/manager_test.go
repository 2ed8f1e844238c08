package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/qaboard/internal/server/repositories/questions"
	"github.com/dmitrijs2005/qaboard/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestNewRepositoryManager_Memory(t *testing.T) {
	m, err := NewRepositoryManager(context.Background(), "memory://", "qaboard")
	require.NoError(t, err)
	assert.IsType(t, &InMemoryRepositoryManager{}, m)
	assert.NoError(t, m.RunMigrations(context.Background()))
	assert.NoError(t, m.Ping(context.Background()))
	assert.NotNil(t, m.Users())
	assert.NotNil(t, m.Questions())
}

func TestNewRepositoryManager_UnsupportedScheme(t *testing.T) {
	_, err := NewRepositoryManager(context.Background(), "redis://localhost", "qaboard")
	assert.ErrorContains(t, err, `unsupported database scheme "redis"`)
}

func TestPostgresManager_Repositories(t *testing.T) {
	db, _ := newDB(t)
	m := NewPostgresRepositoryManager(db)

	var _ RepositoryManager = m
	assert.IsType(t, &users.PostgresRepository{}, m.Users())
	assert.IsType(t, &questions.PostgresRepository{}, m.Questions())
}

func TestPostgresManager_Ping(t *testing.T) {
	db, mock := newDB(t)
	m := NewPostgresRepositoryManager(db)

	mock.ExpectPing()
	assert.NoError(t, m.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("down"))
	assert.Error(t, m.Ping(context.Background()))
}

func TestPostgresManager_RunMigrations(t *testing.T) {
	db, _ := newDB(t)
	m := NewPostgresRepositoryManager(db)

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	var gotDir string
	gooseUpContext = func(ctx context.Context, _ *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}
	require.NoError(t, m.RunMigrations(context.Background()))
	assert.Equal(t, ".", gotDir)

	gooseUpContext = func(ctx context.Context, _ *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	assert.EqualError(t, m.RunMigrations(context.Background()), "boom")
}
