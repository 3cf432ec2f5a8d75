package sender

import (
	"context"
	"log/slog"
	"time"

	"github.com/robbyt/go-fsm/v2"
	"github.com/robbyt/go-fsm/v2/hooks"
	"github.com/robbyt/go-fsm/v2/hooks/broadcast"
	"github.com/robbyt/go-fsm/v2/transitions"
)

// Lifecycle states. Booting covers the warm-up countdown and Running the
// interval loop.
const (
	StatusNew      = transitions.StatusNew
	StatusBooting  = transitions.StatusBooting
	StatusRunning  = transitions.StatusRunning
	StatusStopping = transitions.StatusStopping
	StatusStopped  = transitions.StatusStopped
	StatusError    = transitions.StatusError
)

const stateChanTimeout = 5 * time.Second

// senderTransitions differs from transitions.Typical in allowing a stop
// during warm-up.
var senderTransitions = transitions.MustNew(map[string][]string{
	StatusNew:      {StatusBooting, StatusError},
	StatusBooting:  {StatusRunning, StatusStopping, StatusError},
	StatusRunning:  {StatusStopping, StatusError},
	StatusStopping: {StatusStopped, StatusError},
	StatusStopped:  {StatusNew, StatusError},
	StatusError:    {StatusError, StatusStopping, StatusStopped},
})

type stateMachine struct {
	*fsm.Machine
	broadcastManager *broadcast.Manager
}

func newStateMachine(handler slog.Handler) (*stateMachine, error) {
	registry, err := hooks.NewRegistry(
		hooks.WithLogHandler(handler),
		hooks.WithTransitions(senderTransitions),
	)
	if err != nil {
		return nil, err
	}

	broadcastManager := broadcast.NewManager(handler)
	err = registry.RegisterPostTransitionHook(hooks.PostTransitionHookConfig{
		Name:   "broadcast",
		From:   []string{"*"},
		To:     []string{"*"},
		Action: broadcastManager.BroadcastHook,
	})
	if err != nil {
		return nil, err
	}

	machine, err := fsm.New(
		StatusNew,
		senderTransitions,
		fsm.WithLogHandler(handler),
		fsm.WithCallbackRegistry(registry),
	)
	if err != nil {
		return nil, err
	}

	return &stateMachine{
		Machine:          machine,
		broadcastManager: broadcastManager,
	}, nil
}

// GetStateChan emits the current state first, then every transition, until
// ctx is cancelled.
func (m *stateMachine) GetStateChan(ctx context.Context) <-chan string {
	out := make(chan string, 1)

	updates, err := m.broadcastManager.GetStateChan(ctx, broadcast.WithTimeout(stateChanTimeout))
	if err != nil {
		close(out)
		return out
	}
	out <- m.GetState()

	go func() {
		defer close(out)
		for state := range updates {
			select {
			case out <- state:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
