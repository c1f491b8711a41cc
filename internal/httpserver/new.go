package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"linkylink/internal/event"
	"linkylink/internal/middleware"
	"linkylink/pkg/datemath"
	"linkylink/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Event domain
	eventUC event.UseCase
	display *datemath.Parser
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	RateLimitPerMin int
	AllowedOrigins  []string

	// Event domain
	EventUseCase event.UseCase
	Display      *datemath.Parser
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		eventUC:     cfg.EventUseCase,
		display:     cfg.Display,
		mw: middleware.New(logger, middleware.Config{
			RateLimitPerMin: cfg.RateLimitPerMin,
			AllowedOrigins:  cfg.AllowedOrigins,
		}),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.eventUC == nil {
		return errors.New("event use case is required")
	}
	if srv.display == nil {
		return errors.New("display parser is required")
	}
	return nil
}
