package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/programme-lv/speedup/internal/config"
	"github.com/urfave/cli/v3"
)

type action func(ctx context.Context, cfg config.Config) error

func newCommand(run action) *cli.Command {
	return &cli.Command{
		Name:      "speedup",
		Usage:     "measure how a program's wall time scales with its thread count",
		ArgsUsage: "<executable>",
		Description: "Runs <executable> N for N = 1..max_cores, --repeat times each, prints the\n" +
			"mean times with their distance to the fastest and slowest run, and plots\n" +
			"the speedup over one core to <executable>.png.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "repeat",
				Aliases: []string{"r"},
				Value:   config.DefaultRepeat,
				Usage:   "measurements per core count",
				Sources: cli.EnvVars(config.EnvRepeat),
			},
			&cli.IntFlag{
				Name:    "max_cores",
				Aliases: []string{"m"},
				Value:   runtime.NumCPU(),
				Usage:   "largest core count to sweep",
				Sources: cli.EnvVars(config.EnvMaxCores),
			},
			&cli.BoolFlag{
				Name:    "show",
				Usage:   "open the chart after saving it",
				Sources: cli.EnvVars(config.EnvShow),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   ".",
				Usage:   "directory to write the chart to",
				Sources: cli.EnvVars(config.EnvOutputDir),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML file with default settings",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "no progress bars or summary table",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			setupLogger(cmd.ErrWriter, cmd.Bool("verbose"))
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return run(ctx, cfg)
		},
	}
}

// resolveConfig layers flags and environment over the config file over
// the defaults.
func resolveConfig(cmd *cli.Command) (config.Config, error) {
	if cmd.NArg() != 1 {
		return config.Config{}, fmt.Errorf("%w: expected exactly one executable, got %d arguments",
			config.ErrInvalid, cmd.NArg())
	}

	var (
		cfg config.Config
		err error
	)
	if path := cmd.String("config"); path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.LoadDefaultFile()
	}
	if err != nil {
		return cfg, err
	}

	cfg.Executable = cmd.Args().First()
	if cmd.IsSet("repeat") {
		cfg.Repeat = cmd.Int("repeat")
	}
	if cmd.IsSet("max_cores") {
		cfg.MaxCores = cmd.Int("max_cores")
	}
	if cmd.IsSet("show") {
		cfg.Show = cmd.Bool("show")
	}
	if cmd.IsSet("output") {
		cfg.OutputDir = cmd.String("output")
	}
	if cmd.IsSet("quiet") {
		cfg.Quiet = cmd.Bool("quiet")
	}
	cfg.Verbose = cmd.Bool("verbose")

	return cfg, cfg.Validate()
}
