package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/lixenwraith/boxpusher/config"
	"github.com/lixenwraith/boxpusher/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout).Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "boxpusher: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "boxpusher",
		Usage:  "push boxes onto matching spots",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "write debug logs under the log directory",
			},
			&cli.BoolFlag{
				Name:  "lifo",
				Usage: "consume the newest queued key first",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "play in the terminal",
				Action: playAction,
			},
			{
				Name:  "simulate",
				Usage: "apply a move string headlessly and print the final state",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "moves",
						Aliases:  []string{"m"},
						Usage:    "moves as U/D/L/R letters, e.g. RRUL",
						Required: true,
					},
				},
				Action: simulateAction,
			},
		},
		DefaultCommand: "play",
	}
}

// settings resolves config and logger from the global flags
func settings(cmd *cli.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, nil, err
	}
	if cmd.Bool("lifo") {
		cfg.Input.Order = "lifo"
	}

	logger, err := logging.Setup(cmd.Bool("debug"), cfg.Log.Dir, cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	logger = logger.With(zap.String("session", uuid.NewString()))
	return cfg, logger, nil
}
