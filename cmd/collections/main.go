// Command collections replays container workloads described in YAML files
// and synthetic LRU traces, printing a report and the resulting cache metrics.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/dmitrymomot/collections/pkg/config"
	"github.com/dmitrymomot/collections/pkg/logger"
)

// env is shared by every command once Before has run.
type env struct {
	ctx context.Context
	cfg config.App
	log *slog.Logger
}

var (
	envFileFlag = cli.StringSliceFlag{
		Name:  "env-file",
		Usage: "load variables from `FILE` before reading configuration (repeatable)",
	}
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "override COLLECTIONS_LOG_LEVEL (debug, info, warn, error)",
	}
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := &env{ctx: ctx}

	app := cli.NewApp()
	app.Name = "collections"
	app.Usage = "replay heap, merge, median and LRU cache workloads"
	app.Flags = []cli.Flag{envFileFlag, logLevelFlag}
	app.Before = e.setup
	app.Commands = []cli.Command{
		runCommand(e),
		synthCommand(e),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func (e *env) setup(c *cli.Context) error {
	if files := c.GlobalStringSlice(envFileFlag.Name); len(files) > 0 {
		if err := config.LoadEnv(files...); err != nil {
			return err
		}
	}

	cfg, err := config.LoadApp()
	if err != nil {
		return err
	}
	if lvl := c.GlobalString(logLevelFlag.Name); lvl != "" {
		cfg.LogLevel = lvl
	}
	log, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}

	e.cfg = cfg
	e.log = log
	logger.SetAsDefault(e.log)
	return nil
}

// newLogger applies the environment profile and, when cfg.LogLevel is set,
// overrides the profile's level.
func newLogger(cfg config.App, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithOutput(w),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...), nil
}
