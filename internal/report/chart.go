package report

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ChartConfig holds configuration for chart generation
type ChartConfig struct {
	Width  vg.Length
	Height vg.Length
}

// DefaultChartConfig returns default chart configuration
func DefaultChartConfig() *ChartConfig {
	return &ChartConfig{
		Width:  8 * vg.Inch,
		Height: 6 * vg.Inch,
	}
}

var (
	perfectColor = color.RGBA{R: 102, G: 102, B: 102, A: 255}
	actualColor  = color.RGBA{R: 66, G: 133, B: 244, A: 255}
)

// ChartPath is where the chart for executable is written: the executable's
// base name with a .png suffix, inside dir.
func ChartPath(dir, executable string) string {
	return filepath.Join(dir, filepath.Base(executable)+".png")
}

// speedupXYs carries the speedup points and their asymmetric errors for
// plotter.NewYErrorBars.
type speedupXYs struct {
	plotter.XYs
	plotter.YErrors
}

// SaveChart draws the measured speedup against perfect linear scaling and
// writes it to path, overwriting any existing file. The format follows the
// file extension.
func SaveChart(title string, points []Point, path string, config *ChartConfig) error {
	if len(points) == 0 {
		return fmt.Errorf("no speedup points to plot")
	}
	if config == nil {
		config = DefaultChartConfig()
	}

	p := plot.New()
	p.Title.Text = title + " scaling"
	p.X.Label.Text = "Threads per kernel"
	p.Y.Label.Text = "Speedup"
	p.X.Tick.Marker = integerTicks{}
	p.Legend.Top = true
	p.Legend.Left = true

	data := speedupXYs{
		XYs:     make(plotter.XYs, len(points)),
		YErrors: make(plotter.YErrors, len(points)),
	}
	perfect := make(plotter.XYs, len(points))
	for i, pt := range points {
		data.XYs[i].X = float64(pt.Cores)
		data.XYs[i].Y = pt.Speedup
		data.YErrors[i].Low = pt.Lower
		data.YErrors[i].High = pt.Upper
		perfect[i].X = float64(pt.Cores)
		perfect[i].Y = float64(pt.Cores)
	}

	perfectLine, err := plotter.NewLine(perfect)
	if err != nil {
		return err
	}
	perfectLine.LineStyle.Color = perfectColor
	perfectLine.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}

	actual, err := plotter.NewScatter(data)
	if err != nil {
		return err
	}
	actual.GlyphStyle.Color = actualColor
	actual.GlyphStyle.Radius = vg.Points(3)
	actual.GlyphStyle.Shape = draw.CircleGlyph{}

	errBars, err := plotter.NewYErrorBars(data)
	if err != nil {
		return err
	}
	errBars.LineStyle.Color = actualColor

	p.Add(plotter.NewGrid(), perfectLine, errBars, actual)
	p.Legend.Add("Perfect", perfectLine)
	p.Legend.Add("Actual", actual)

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return p.Save(config.Width, config.Height, path)
}

// integerTicks labels whole numbers only, thinning them out on wide axes.
type integerTicks struct{}

func (integerTicks) Ticks(lo, hi float64) []plot.Tick {
	first := math.Ceil(lo)
	last := math.Floor(hi)
	if last < first {
		return nil
	}

	step := 1.0
	for (last-first)/step > 12 {
		step *= 2
	}

	var ticks []plot.Tick
	for v := first; v <= last; v++ {
		t := plot.Tick{Value: v}
		if math.Mod(v-first, step) == 0 {
			t.Label = strconv.Itoa(int(v))
		}
		ticks = append(ticks, t)
	}
	return ticks
}
