package sender

import "errors"

var (
	// ErrMalformedHeader is returned for a HEADERS entry without a colon or a name
	ErrMalformedHeader = errors.New("malformed header entry")

	// ErrInvalidHost is returned when HOST is not an absolute URL
	ErrInvalidHost = errors.New("invalid host")

	// ErrNilConfig is returned when a runner is created without a configuration
	ErrNilConfig = errors.New("sender config cannot be nil")

	// ErrAlreadyStarted is returned when Run is called on a runner that has already run
	ErrAlreadyStarted = errors.New("sender already started")

	// ErrStateMachine is returned when the lifecycle state machine cannot be built
	ErrStateMachine = errors.New("sender state machine error")
)
