package main

import (
	"context"
	"fmt"

	"github.com/atlanticdynamic/interval-workloads/internal/responder"
	"github.com/urfave/cli/v3"
)

func newConfigCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the resolved configuration and route table",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintln(cmd.Root().Writer, configFromFlags(cmd))
			return err
		},
	}
}

func configFromFlags(cmd *cli.Command) *responder.Config {
	return responder.NewConfig(cmd.String(flagPort), cmd.String(flagReceivePaths))
}
