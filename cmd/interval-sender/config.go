package main

import (
	"context"
	"fmt"

	"github.com/atlanticdynamic/interval-workloads/internal/sender"
	"github.com/urfave/cli/v3"
)

func newConfigCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the resolved request configuration",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := configFromFlags(cmd)
			if err != nil {
				return cli.Exit(err, 1)
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, cfg)
			return err
		},
	}
}

func configFromFlags(cmd *cli.Command) (*sender.Config, error) {
	cfg, err := sender.NewConfig(
		cmd.String(flagHost),
		cmd.String(flagRequestPath),
		cmd.String(flagMethod),
		cmd.String(flagHeaders),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid sender configuration: %w", err)
	}
	return cfg, nil
}
