package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/qaboard/internal/client/client"
	"github.com/dmitrijs2005/qaboard/internal/client/config"
	"github.com/dmitrijs2005/qaboard/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/qaboard/internal/client/services"
	"github.com/dmitrijs2005/qaboard/internal/client/session"
	"github.com/dmitrijs2005/qaboard/internal/logging"
)

type App struct {
	config          *config.Config
	db              *sql.DB
	authService     services.AuthService
	questionService services.QuestionService
	logger          logging.Logger
	reader          *bufio.Reader
	out             io.Writer
}

// NewApp opens the local database and wires the services. Diagnostics go
// to stderr so they do not mix with command output.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stderr, slog.LevelWarn)

	db, err := client.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	apiClient := client.NewGraphQLClient(c.ServerURL, c.RequestTimeout)
	s := session.New(metadata.NewSQLiteRepository(db), logger.With("module", "session"))

	a := newApp(c, services.NewAuthService(apiClient, s), services.NewQuestionService(apiClient, s), logger)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, as services.AuthService, qs services.QuestionService, logger logging.Logger) *App {
	return &App{
		config:          c,
		authService:     as,
		questionService: qs,
		logger:          logger,
		reader:          bufio.NewReader(os.Stdin),
		out:             os.Stdout,
	}
}

// Run restores the saved session and runs the REPL until the user quits
// or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	if err := a.authService.Init(ctx); err != nil {
		a.logger.Warn(ctx, "could not restore session", "error", err)
	}

	printlnFn("Welcome to qaboard (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.authService.Current().LoggedIn()
}

func (a *App) currentUserName() string {
	if u := a.authService.Current().User; u != nil {
		return u.UserName
	}
	return ""
}

func (a *App) getStatus() string {
	if name := a.currentUserName(); name != "" {
		return "(" + name + ")"
	}
	return ""
}
