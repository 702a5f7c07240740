// Package main is the command line entry point for the record service.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Arpan-gl/mirfa-test-app/cmd/app/commands"
)

const version = "1.0.0"

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:    "app",
		Usage:   "Envelope encryption record service",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP API and metrics servers",
				Action: func(ctx context.Context, _ *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "create-master-key",
				Usage: "Generate a master key and print it as a MASTER_KEY value",
				Action: func(context.Context, *cli.Command) error {
					return commands.RunCreateMasterKey(os.Stdout)
				},
			},
		},
	}
}

func main() {
	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
