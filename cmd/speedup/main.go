package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/programme-lv/speedup/internal/bench"
	"github.com/programme-lv/speedup/internal/config"
	"github.com/programme-lv/speedup/internal/report"
	"github.com/programme-lv/speedup/internal/termgath"
	"github.com/programme-lv/speedup/internal/timing"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Warn("ignoring .env", "error", err)
	}

	cmd := newCommand(runBench)
	if err := cmd.Run(ctx, os.Args); err != nil {
		slog.Error("speedup failed", "error", err)
		os.Exit(1)
	}
}

func runBench(ctx context.Context, cfg config.Config) error {
	b := &bench.Bench{
		Runner:   &timing.ExecRunner{},
		Gatherer: termgath.New(os.Stderr, cfg.Quiet),
		Viewer:   report.SystemViewer{},
		Out:      os.Stdout,
	}
	_, err := b.Run(ctx, cfg)
	return err
}
