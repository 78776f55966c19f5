package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/programme-lv/speedup/internal/timing"
)

// WriteArrays prints the mean times, lower errors and upper errors as three
// bracketed arrays on a single line.
func WriteArrays(w io.Writer, summaries []timing.Summary) error {
	times := make([]float64, len(summaries))
	lower := make([]float64, len(summaries))
	upper := make([]float64, len(summaries))
	for i, s := range summaries {
		times[i] = s.Mean
		lower[i] = s.LowerErr
		upper[i] = s.UpperErr
	}
	_, err := fmt.Fprintf(w, "%s %s %s\n", formatArray(times), formatArray(lower), formatArray(upper))
	return err
}

func formatArray(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatFloat(x, 'g', 8, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
