package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	eventHTTP "git-activity-feed/internal/event/delivery/http"
	"git-activity-feed/internal/middleware"
	"git-activity-feed/internal/test"
	"git-activity-feed/pkg/log"
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
	eventHandler   eventHTTP.Handler
	storageBackend string

	// Debug endpoints, never mounted in production
	testHandler test.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string

	// Event domain
	EventHandler   eventHTTP.Handler
	StorageBackend string

	// Optional
	TestHandler test.Handler
}

// New creates a new HTTPServer instance and registers its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mw:             middleware.New(logger, cfg.AllowedOrigins),
		eventHandler:   cfg.EventHandler,
		storageBackend: cfg.StorageBackend,
		testHandler:    cfg.TestHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
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
	if srv.eventHandler == nil {
		return errors.New("event handler is required")
	}
	return nil
}

// Handler exposes the configured router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
