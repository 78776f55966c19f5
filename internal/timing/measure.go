package timing

import (
	"context"
	"fmt"
	"log/slog"
)

// Measure runs args repeat times, one after another, and summarizes the
// wall times under the given core count. onSample, if non-nil, is called
// after every run. The first run that cannot be launched aborts the
// measurement.
func Measure(
	ctx context.Context,
	runner Runner,
	args []string,
	cores int,
	repeat int,
	onSample func(Sample),
) (Summary, error) {
	if repeat < 1 {
		return Summary{}, fmt.Errorf("repeat must be positive, got %d", repeat)
	}

	samples := make([]Sample, 0, repeat)
	for i := 0; i < repeat; i++ {
		s, err := runner.Run(ctx, args)
		if err != nil {
			return Summary{}, err
		}
		if err := ctx.Err(); err != nil {
			return Summary{}, err
		}
		s.Cores = cores
		s.Index = i

		// The exit status does not disqualify a sample.
		if s.ExitCode != 0 {
			slog.Warn("program exited with non-zero status",
				"cores", cores, "run", i, "exit", s.ExitCode, "wall", s.Wall)
		}

		samples = append(samples, s)
		if onSample != nil {
			onSample(s)
		}
	}

	return Summarize(cores, samples)
}
