package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/programme-lv/speedup/internal/timing"
)

// WriteTable renders a per-core-count summary table. points must line up
// with summaries.
func WriteTable(w io.Writer, summaries []timing.Summary, points []Point) error {
	if len(summaries) != len(points) {
		return fmt.Errorf("have %d summaries but %d speedup points", len(summaries), len(points))
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Cores", "Mean (s)", "Min (s)", "Max (s)", "StdDev (s)", "Speedup", "Efficiency"})
	for i, s := range summaries {
		p := points[i]
		t.AppendRow(table.Row{
			s.Cores,
			fmt.Sprintf("%.4f", s.Mean),
			fmt.Sprintf("%.4f", s.Min),
			fmt.Sprintf("%.4f", s.Max),
			fmt.Sprintf("%.4f", s.StdDev),
			fmt.Sprintf("%.2f", p.Speedup),
			p.Efficiency(),
		})
	}
	t.SetStyle(table.StyleLight)

	efficiencyColor := text.Transformer(func(v interface{}) string {
		e, ok := v.(float64)
		if !ok {
			return fmt.Sprint(v)
		}
		s := fmt.Sprintf("%.0f%%", e*100)
		switch {
		case e >= 0.8:
			return text.FgHiGreen.Sprint(s)
		case e >= 0.5:
			return text.FgHiYellow.Sprint(s)
		default:
			return text.FgHiRed.Sprint(s)
		}
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Cores", Align: text.AlignRight},
		{Name: "Efficiency", Transformer: efficiencyColor, Align: text.AlignRight},
	})
	t.Render()
	return nil
}
