package main

import (
	"context"
	"fmt"

	"github.com/atlanticdynamic/interval-workloads/internal/logging"
	"github.com/atlanticdynamic/interval-workloads/internal/responder"
	"github.com/robbyt/go-supervisor/supervisor"
	"github.com/urfave/cli/v3"
)

func runAction(ctx context.Context, cmd *cli.Command) error {
	logHandler, err := logging.SetupLogger(cmd.String(flagLogFormat), cmd.String(flagLogLevel))
	if err != nil {
		return cli.Exit(err, 1)
	}

	runner, err := responder.NewRunner(
		configFromFlags(cmd),
		responder.WithLogHandler(logHandler),
	)
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to create responder: %w", err), 1)
	}

	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(logHandler),
		supervisor.WithRunnables(runner),
	)
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to create supervisor: %w", err), 1)
	}
	if err := super.Run(); err != nil {
		return cli.Exit(fmt.Errorf("failed to run responder: %w", err), 1)
	}
	return nil
}
