package timing

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the samples taken for one core count. All values are
// in seconds.
type Summary struct {
	Cores    int
	Mean     float64
	Min      float64
	Max      float64
	StdDev   float64
	LowerErr float64 // Mean - Min
	UpperErr float64 // Max - Mean
	Samples  []Sample
}

func Summarize(cores int, samples []Sample) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, fmt.Errorf("no samples for %d cores", cores)
	}

	secs := make([]float64, len(samples))
	for i, s := range samples {
		secs[i] = s.Seconds()
	}

	mean, err := stats.Mean(secs)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to calculate mean: %w", err)
	}
	lo, err := stats.Min(secs)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to calculate min: %w", err)
	}
	hi, err := stats.Max(secs)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to calculate max: %w", err)
	}

	// Floating point summation may put the mean a hair outside [lo, hi].
	mean = min(max(mean, lo), hi)

	var stddev float64
	if len(secs) > 1 {
		stddev = stat.StdDev(secs, nil)
	}

	return Summary{
		Cores:    cores,
		Mean:     mean,
		Min:      lo,
		Max:      hi,
		StdDev:   stddev,
		LowerErr: mean - lo,
		UpperErr: hi - mean,
		Samples:  samples,
	}, nil
}
