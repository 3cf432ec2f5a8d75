package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

const (
	flagHost        = "host"
	flagRequestPath = "request-path"
	flagMethod      = "method"
	flagHeaders     = "headers"
	flagLogLevel    = "log-level"
	flagLogFormat   = "log-format"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "interval-sender",
		Version: Version,
		Usage:   "Send one HTTP request every interval to a fixed target",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagHost,
				Usage:   "Target base URL",
				Value:   "http://localhost:8080",
				Sources: cli.EnvVars("HOST"),
			},
			&cli.StringFlag{
				Name:    flagRequestPath,
				Usage:   "Request path, optionally with a query string",
				Value:   "/echo",
				Sources: cli.EnvVars("REQUEST_PATH"),
			},
			&cli.StringFlag{
				Name:    flagMethod,
				Usage:   "HTTP method",
				Value:   "GET",
				Sources: cli.EnvVars("METHOD"),
			},
			&cli.StringFlag{
				Name:    flagHeaders,
				Usage:   "Comma-separated Name:Value request headers",
				Sources: cli.EnvVars("HEADERS"),
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
