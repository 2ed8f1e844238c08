// Package server wires configuration, storage and services together and
// runs the HTTP (GraphQL) and gRPC (health) servers until shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/qaboard/internal/logging"
	"github.com/dmitrijs2005/qaboard/internal/server/auth"
	"github.com/dmitrijs2005/qaboard/internal/server/config"
	"github.com/dmitrijs2005/qaboard/internal/server/graph"
	"github.com/dmitrijs2005/qaboard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/qaboard/internal/server/services"

	gs "github.com/dmitrijs2005/qaboard/internal/server/grpc"
)

const shutdownTimeout = 5 * time.Second

type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	httpServer  runner
	grpcServer  runner
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	m, err := repomanager.NewRepositoryManager(ctx, c.DatabaseDSN, c.DatabaseName)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := m.RunMigrations(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	return newApp(c, logger, m), nil
}

func newApp(c *config.Config, logger logging.Logger, m repomanager.RepositoryManager) *App {
	codec := auth.NewTokenCodec([]byte(c.SecretKey), c.TokenValidityDuration)

	resolver := graph.NewResolver(
		services.NewUserService(m, codec),
		services.NewQuestionService(m),
		auth.NewGuard(codec),
		logger,
	)

	return &App{
		config:      c,
		logger:      logger,
		repomanager: m,
		httpServer:  graph.NewHTTPServer(c.EndpointAddrHTTP, c.AllowOrigins, graph.NewSchema(resolver), m, logger),
		grpcServer:  gs.NewGRPCServer(c.EndpointAddrGRPC, m, logger),
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// runServer runs s and cancels the whole app when it fails, so one broken
// listener takes the other down too.
func (app *App) runServer(ctx context.Context, cancelFunc context.CancelFunc, name string, s runner) {
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "server failed", "server", name, "error", err)
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.runServer(ctx, cancelFunc, "http", app.httpServer)
	}()
	go func() {
		defer wg.Done()
		app.runServer(ctx, cancelFunc, "grpc", app.grpcServer)
	}()

	wg.Wait()

	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.repomanager.Close(closeCtx); err != nil {
		app.logger.Error(closeCtx, "closing store failed", "error", err)
	}
	app.logger.Info(closeCtx, "App stopped")
}
