package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

const (
	flagPort         = "port"
	flagReceivePaths = "receive-paths"
	flagLogLevel     = "log-level"
	flagLogFormat    = "log-format"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "interval-responder",
		Version: Version,
		Usage:   "HTTP responder that echoes request bodies or returns a fixed 503",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagPort,
				Usage:   "TCP port to listen on; zero, unset or invalid values use 8080",
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:    flagReceivePaths,
				Usage:   "Comma-separated extra paths served by the echo handler",
				Sources: cli.EnvVars("RECEIVE_PATHS"),
			},
			&cli.StringFlag{
				Name:    flagLogLevel,
				Usage:   "Log level (trace, debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    flagLogFormat,
				Usage:   "Log format (text, json)",
				Value:   "text",
				Sources: cli.EnvVars("LOG_FORMAT"),
			},
		},
		Action: runAction,
		Commands: []*cli.Command{
			newConfigCmd(),
			newVersionCmd(),
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
