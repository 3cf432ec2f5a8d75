// Package responder implements the interval responder: an HTTP server that
// answers a fixed set of exact-match routes with an echo handler or a 503,
// and 404 for everything else.
package responder

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

var (
	_ supervisor.Runnable  = (*Runner)(nil)
	_ supervisor.Stateable = (*Runner)(nil)
	_ supervisor.Readiness = (*Runner)(nil)
)

// serverImplementation is an interface for abstracting the underlying HTTP server sub-runnable implementation
type serverImplementation interface {
	Run(ctx context.Context) error
	Stop()
	GetState() string
	IsReady() bool
	GetStateChan(ctx context.Context) <-chan string
}

// Runner serves a Router through go-supervisor's httpserver.Runner.
type Runner struct {
	cfg    *Config
	router *Router
	server serverImplementation
	logger *slog.Logger

	drainTimeout time.Duration
}

// NewRunner creates the responder runnable for a resolved configuration
func NewRunner(cfg *Config, opts ...Option) (*Runner, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	r := &Runner{
		cfg:          cfg,
		logger:       slog.Default().WithGroup("responder.Runner"),
		drainTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.router = NewRouter(NewRouteTable(cfg.ReceivePaths), r.logger.WithGroup("router"))

	if err := r.initializeRunner(); err != nil {
		return nil, fmt.Errorf("failed to initialize HTTP server runner: %w", err)
	}
	return r, nil
}

// Echo streams last as long as the client keeps sending, so reads and writes
// are unbounded. Only the request header and idle keep-alive are limited.
const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

// initializeRunner registers the router as the catch-all route. The server
// itself is built by newServer so the router sees the raw connection writer.
func (r *Runner) initializeRunner() error {
	route, err := httpserver.NewRouteFromHandlerFunc("responder", "/", r.router.ServeHTTP)
	if err != nil {
		return fmt.Errorf("failed to create route: %w", err)
	}

	address := r.cfg.Address()
	drainTimeout := r.drainTimeout
	configCallback := func() (*httpserver.Config, error) {
		options := []httpserver.ConfigOption{
			httpserver.WithReadTimeout(0),
			httpserver.WithWriteTimeout(0),
			httpserver.WithIdleTimeout(idleTimeout),
			httpserver.WithServerCreator(r.newServer),
		}
		if drainTimeout > 0 {
			options = append(options, httpserver.WithDrainTimeout(drainTimeout))
		}

		config, err := httpserver.NewConfig(address, httpserver.Routes{*route}, options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP server config: %w", err)
		}
		return config, nil
	}

	runner, err := httpserver.NewRunner(
		httpserver.WithConfigCallback(configCallback),
	)
	if err != nil {
		return fmt.Errorf("failed to create HTTP server runner: %w", err)
	}

	r.server = runner
	return nil
}

// newServer serves the router directly instead of the route mux. Route
// handlers wrap the ResponseWriter in a type without Flush, which would hold
// the echo status back until the whole request body was read.
func (r *Runner) newServer(addr string, _ http.Handler, cfg *httpserver.Config) httpserver.HttpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           r.router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// String returns a unique identifier for this runner
func (r *Runner) String() string {
	return fmt.Sprintf("Responder[%s]", r.cfg.Address())
}

// Run serves until ctx is cancelled or Stop is called.
func (r *Runner) Run(ctx context.Context) error {
	if r.cfg.PortDefaulted {
		r.logger.Warn("PORT not set, using :8080")
	}
	r.logger.Info("Running on "+r.cfg.Address(), "routes", len(r.router.routes))
	return r.server.Run(ctx)
}

// Stop stops the HTTP server
func (r *Runner) Stop() {
	r.logger.Info("Stopping responder", "address", r.cfg.Address(), "calls", r.router.Calls())
	r.server.Stop()
}

// GetState returns the current state of the server
func (r *Runner) GetState() string {
	if r.server == nil {
		return "unknown"
	}
	return r.server.GetState()
}

// IsReady reports whether the server is accepting connections
func (r *Runner) IsReady() bool {
	if r.server == nil {
		return false
	}
	return r.server.IsReady()
}

// GetStateChan returns a channel that emits state changes
func (r *Runner) GetStateChan(ctx context.Context) <-chan string {
	if r.server == nil {
		ch := make(chan string)
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		return ch
	}
	return r.server.GetStateChan(ctx)
}

// Router returns the router serving requests
func (r *Runner) Router() *Router {
	return r.router
}
