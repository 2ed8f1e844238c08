package graph

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/qaboard/internal/common"
	"github.com/dmitrijs2005/qaboard/internal/logging"
	"github.com/dmitrijs2005/qaboard/internal/server/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer hosts the GraphQL endpoint and the health check.
type HTTPServer struct {
	address string
	app     *fiber.App
	logger  logging.Logger
	store   Pinger
}

type healthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
}

func NewHTTPServer(address, allowOrigins string, schema *graphql.Schema, store Pinger, l logging.Logger) *HTTPServer {
	s := &HTTPServer{
		address: address,
		logger:  l.With("module", "http_server"),
		store:   store,
		app:     fiber.New(fiber.Config{DisableStartupMessage: true}),
	}

	s.app.Use(recover.New())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	s.app.Use(s.requestLogger)

	s.app.Post("/graphql", adaptor.HTTPHandler(withAuthorization(&relay.Handler{Schema: schema})))
	s.app.Get("/healthz", s.health)

	return s
}

// withAuthorization copies the Authorization header into the request
// context, where resolvers pick it up through the guard.
func withAuthorization(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := auth.WithAuthorization(r.Context(), r.Header.Get(common.AuthorizationHeaderName))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *HTTPServer) requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	s.logger.Info(c.UserContext(), "request",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"latency", time.Since(start),
	)
	return err
}

func (s *HTTPServer) health(c *fiber.Ctx) error {
	status := healthStatus{Status: "healthy", Timestamp: time.Now().UTC()}

	if err := s.store.Ping(c.UserContext()); err != nil {
		status.Status = "degraded"
		status.Error = err.Error()
		return c.Status(fiber.StatusServiceUnavailable).JSON(status)
	}
	return c.JSON(status)
}

// Run serves until ctx is cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		if err := s.app.Shutdown(); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
	return s.app.Listen(s.address)
}
