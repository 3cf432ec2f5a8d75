// Package sender implements the interval sender: after a short countdown it
// issues one HTTP request per interval against a fixed target and logs how
// each one went.
package sender

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-supervisor/supervisor"
)

const (
	defaultStartDelay = 5
	defaultWarmupTick = time.Second
	defaultInterval   = 2000 * time.Millisecond
)

var (
	_ supervisor.Runnable  = (*Runner)(nil)
	_ supervisor.Stateable = (*Runner)(nil)
)

// Runner is the sender's timer loop. Requests are not serialized: a slow
// response can still be in flight when the next tick fires.
type Runner struct {
	cfg    *Config
	client *http.Client
	logger *slog.Logger
	fsm    *stateMachine

	startDelay int
	warmupTick time.Duration
	interval   time.Duration

	stopCtx  context.Context
	stopFunc context.CancelFunc
	inFlight sync.WaitGroup
	attempts atomic.Uint64
}

// NewRunner creates the sender runnable for a resolved configuration
func NewRunner(cfg *Config, opts ...Option) (*Runner, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	stopCtx, stopFunc := context.WithCancel(context.Background())
	r := &Runner{
		cfg:        cfg,
		client:     &http.Client{},
		logger:     slog.Default().WithGroup("sender.Runner"),
		startDelay: defaultStartDelay,
		warmupTick: defaultWarmupTick,
		interval:   defaultInterval,
		stopCtx:    stopCtx,
		stopFunc:   stopFunc,
	}
	for _, opt := range opts {
		opt(r)
	}

	machine, err := newStateMachine(r.logger.Handler())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStateMachine, err)
	}
	r.fsm = machine
	return r, nil
}

// String returns a unique identifier for this runner
func (r *Runner) String() string {
	return fmt.Sprintf("Sender[%s %s]", r.cfg.Options.Method, r.cfg.TargetURL())
}

// Run counts down the warm-up, then sends on every interval tick until ctx
// is cancelled or Stop is called. In-flight requests are cancelled and
// awaited before Run returns. A Runner runs once.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.fsm.TransitionIfCurrentState(StatusNew, StatusBooting); err != nil {
		return fmt.Errorf("%w: %w", ErrAlreadyStarted, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	unregister := context.AfterFunc(r.stopCtx, cancel)
	defer unregister()

	if r.warmUp(ctx) {
		r.transition(StatusRunning)
		r.sendLoop(ctx)
	}

	r.transition(StatusStopping)
	cancel()
	r.inFlight.Wait()
	r.transition(StatusStopped)
	r.logger.Debug("Sender stopped", "attempts", r.attempts.Load())
	return nil
}

// transition moves the lifecycle forward. A rejected transition is logged
// and the machine is put in the error state.
func (r *Runner) transition(state string) {
	if err := r.fsm.Transition(state); err != nil {
		r.logger.Error("Failed to transition state", "state", state, "error", err)
		if err := r.fsm.Transition(StatusError); err != nil {
			r.logger.Error("Failed to enter error state", "error", err)
		}
	}
}

// Stop ends the run loop
func (r *Runner) Stop() {
	r.logger.Info("Stopping sender", "attempts", r.attempts.Load())
	r.stopFunc()
}

// GetState returns the lifecycle state
func (r *Runner) GetState() string {
	return r.fsm.GetState()
}

// GetStateChan returns a channel that emits the lifecycle state whenever it changes
func (r *Runner) GetStateChan(ctx context.Context) <-chan string {
	return r.fsm.GetStateChan(ctx)
}

// Attempts returns the number of requests started so far
func (r *Runner) Attempts() uint64 {
	return r.attempts.Load()
}

// warmUp reports false if ctx ended before the countdown reached zero.
func (r *Runner) warmUp(ctx context.Context) bool {
	remaining := r.startDelay
	r.logger.Info(fmt.Sprintf("Starting in %d seconds", remaining))
	if remaining <= 0 {
		return ctx.Err() == nil
	}

	ticker := time.NewTicker(r.warmupTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			remaining--
			if remaining == 0 {
				return true
			}
			r.logger.Info(fmt.Sprintf("Starting in %d seconds", remaining))
		}
	}
}

func (r *Runner) sendLoop(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.attempts.Add(1)
			r.inFlight.Go(func() {
				r.send(ctx)
			})
		}
	}
}

// send performs one attempt and logs its outcome. Failures never propagate.
func (r *Runner) send(ctx context.Context) {
	logger := r.logger.With("request_id", uuid.Must(uuid.NewV6()).String())
	target := r.cfg.TargetURL()

	logger.Info("Sending request: " + target)
	logger.Info("Configured options: " + r.cfg.OptionsJSON())

	req, err := r.newRequest(ctx, target)
	if err != nil {
		logger.Error("Got error: " + err.Error())
		return
	}

	resp, err := r.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			logger.Debug("Request cancelled", "error", err)
			return
		}
		logger.Error("Got error: " + err.Error())
		return
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Debug("Failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			logger.Debug("Request cancelled", "error", err)
			return
		}
		logger.Error("Got error: " + err.Error())
		return
	}

	if resp.StatusCode >= 400 {
		logger.Warn(fmt.Sprintf("Server error - %d", resp.StatusCode))
		return
	}
	logger.Info(fmt.Sprintf("Success response - %d %s", resp.StatusCode, body))
}

// newRequest builds the outgoing request. Header names are sent as
// configured; a Host entry overrides the request host.
func (r *Runner) newRequest(ctx context.Context, target string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, r.cfg.Options.Method, target, nil)
	if err != nil {
		return nil, err
	}
	for name, value := range r.cfg.Options.Headers {
		if strings.EqualFold(name, "Host") {
			req.Host = value
			continue
		}
		req.Header[name] = []string{value}
	}
	return req, nil
}
