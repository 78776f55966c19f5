package report

import (
	"fmt"

	"github.com/programme-lv/speedup/internal/timing"
)

// Point is the speedup for one core count, with asymmetric error bars.
type Point struct {
	Cores   int
	Speedup float64
	Lower   float64
	Upper   float64
}

// PropagateRatioError returns the error of baseline/x given the error ex of
// x, with the baseline treated as exact.
func PropagateRatioError(baseline, x, ex float64) float64 {
	return baseline * ex / (x * x)
}

// Speedups divides the first summary's mean by every mean. Because speedup
// is inversely proportional to time, the upper time error becomes the lower
// speedup error and vice versa.
func Speedups(summaries []timing.Summary) ([]Point, error) {
	if len(summaries) == 0 {
		return nil, fmt.Errorf("no measurements to compute speedup from")
	}

	baseline := summaries[0].Mean
	points := make([]Point, len(summaries))
	for i, s := range summaries {
		if s.Mean <= 0 {
			return nil, fmt.Errorf("non-positive mean time %g for %d cores", s.Mean, s.Cores)
		}
		points[i] = Point{
			Cores:   s.Cores,
			Speedup: baseline / s.Mean,
			Lower:   PropagateRatioError(baseline, s.Mean, s.UpperErr),
			Upper:   PropagateRatioError(baseline, s.Mean, s.LowerErr),
		}
	}
	return points, nil
}

// Efficiency is speedup per core; 1.0 is perfect scaling.
func (p Point) Efficiency() float64 {
	if p.Cores == 0 {
		return 0
	}
	return p.Speedup / float64(p.Cores)
}
