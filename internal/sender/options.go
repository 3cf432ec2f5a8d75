package sender

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures a Runner
type Option func(*Runner)

// WithLogHandler sets a custom slog handler for the Runner instance.
func WithLogHandler(handler slog.Handler) Option {
	return func(r *Runner) {
		if handler != nil {
			r.logger = slog.New(handler).WithGroup("sender.Runner")
		}
	}
}

// WithLogger sets a logger for the Runner instance.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithHTTPClient replaces the default client, which has no timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(r *Runner) {
		if client != nil {
			r.client = client
		}
	}
}

// WithWarmup sets the number of countdown ticks and the tick length.
func WithWarmup(ticks int, tick time.Duration) Option {
	return func(r *Runner) {
		if ticks >= 0 {
			r.startDelay = ticks
		}
		if tick > 0 {
			r.warmupTick = tick
		}
	}
}

// WithInterval sets the time between requests once warm-up is over.
func WithInterval(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.interval = d
		}
	}
}
