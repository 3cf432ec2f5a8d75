package responder

import "errors"

// ErrNilConfig is returned when a runner is created without a configuration
var ErrNilConfig = errors.New("responder config cannot be nil")
