package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/programme-lv/speedup/internal/config"
	"github.com/programme-lv/speedup/internal/timing"
)

// Run measures cfg.Executable for every core count from 1 to cfg.MaxCores
// and returns one summary per core count in ascending order. The core count
// is passed to the executable as its only argument. cfg is expected to be
// validated by the caller.
func Run(
	ctx context.Context,
	cfg config.Config,
	runner timing.Runner,
	gath Gatherer,
) ([]timing.Summary, error) {
	if gath == nil {
		gath = NopGatherer{}
	}

	gath.StartSweep(cfg.MaxCores, cfg.Repeat)

	summaries := make([]timing.Summary, 0, cfg.MaxCores)
	for cores := 1; cores <= cfg.MaxCores; cores++ {
		gath.StartCores(cores)

		args := []string{cfg.Executable, strconv.Itoa(cores)}
		sum, err := timing.Measure(ctx, runner, args, cores, cfg.Repeat, gath.FinishRun)
		if err != nil {
			return nil, fmt.Errorf("failed to measure %d cores: %w", cores, err)
		}
		slog.Debug("measured", "cores", cores, "mean", sum.Mean,
			"lower_err", sum.LowerErr, "upper_err", sum.UpperErr)

		gath.FinishCores(sum)
		summaries = append(summaries, sum)
	}

	gath.FinishSweep(summaries)
	return summaries, nil
}
