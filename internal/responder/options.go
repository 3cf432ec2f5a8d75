package responder

import (
	"log/slog"
	"time"
)

// Option configures a Runner
type Option func(*Runner)

// WithLogHandler sets a custom slog handler for the Runner instance.
func WithLogHandler(handler slog.Handler) Option {
	return func(r *Runner) {
		if handler != nil {
			r.logger = slog.New(handler).WithGroup("responder.Runner")
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

// WithDrainTimeout bounds how long shutdown waits for open requests.
func WithDrainTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.drainTimeout = d
	}
}
