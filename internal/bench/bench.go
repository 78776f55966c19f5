package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/programme-lv/speedup/internal/config"
	"github.com/programme-lv/speedup/internal/report"
	"github.com/programme-lv/speedup/internal/sweep"
	"github.com/programme-lv/speedup/internal/timing"
)

// Bench runs the whole pipeline: sweep, console report, chart and
// optionally a viewer.
type Bench struct {
	Runner   timing.Runner
	Gatherer sweep.Gatherer
	Viewer   report.Viewer
	Chart    *report.ChartConfig
	Out      io.Writer
}

// Run measures cfg.Executable and writes its speedup chart. It returns the
// chart path. Nothing is written if any measurement fails. cfg must have
// passed Validate.
func (b *Bench) Run(ctx context.Context, cfg config.Config) (string, error) {
	summaries, err := sweep.Run(ctx, cfg, b.Runner, b.Gatherer)
	if err != nil {
		return "", err
	}

	points, err := report.Speedups(summaries)
	if err != nil {
		return "", fmt.Errorf("failed to compute speedup: %w", err)
	}

	if err := report.WriteArrays(b.Out, summaries); err != nil {
		return "", fmt.Errorf("failed to print measurements: %w", err)
	}
	if !cfg.Quiet {
		if err := report.WriteTable(b.Out, summaries, points); err != nil {
			return "", fmt.Errorf("failed to print summary table: %w", err)
		}
	}

	path := report.ChartPath(cfg.OutputDir, cfg.Executable)
	if err := report.SaveChart(cfg.Executable, points, path, b.Chart); err != nil {
		return "", fmt.Errorf("failed to save chart: %w", err)
	}
	slog.Info("saved chart", "path", path)

	if cfg.Show && b.Viewer != nil {
		if err := b.Viewer.Open(ctx, path); err != nil {
			return path, err
		}
	}
	return path, nil
}
