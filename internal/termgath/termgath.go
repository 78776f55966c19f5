package termgath

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/programme-lv/speedup/internal/timing"
	"github.com/schollz/progressbar/v3"
)

var (
	header  = color.New(color.FgHiCyan, color.Bold)
	faint   = color.New(color.Faint)
	warning = color.New(color.FgHiYellow)
)

// TerminalGatherer reports sweep progress on a terminal: a header per sweep,
// a progress bar per core count and a line per finished core count.
type TerminalGatherer struct {
	StartedAt time.Time

	out    io.Writer
	quiet  bool
	repeat int
	bar    *progressbar.ProgressBar
	failed int
}

func New(out io.Writer, quiet bool) *TerminalGatherer {
	if out == nil {
		out = os.Stderr
	}
	return &TerminalGatherer{StartedAt: time.Now(), out: out, quiet: quiet}
}

func (t *TerminalGatherer) StartSweep(maxCores int, repeat int) {
	t.StartedAt = time.Now()
	t.repeat = repeat
	if t.quiet {
		return
	}
	header.Fprintf(t.out, "== Sweeping 1..%d cores, %d runs each ==\n", maxCores, repeat)
}

func (t *TerminalGatherer) StartCores(cores int) {
	if t.quiet {
		return
	}
	t.bar = progressbar.NewOptions(t.repeat,
		progressbar.OptionSetWriter(t.out),
		progressbar.OptionSetDescription(fmt.Sprintf("%3d cores", cores)),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(t.out) }),
	)
}

func (t *TerminalGatherer) FinishRun(sample timing.Sample) {
	if sample.ExitCode != 0 {
		t.failed++
	}
	if t.bar != nil {
		if err := t.bar.Add(1); err != nil {
			slog.Debug("failed to update progress bar", "error", err)
		}
	}
}

func (t *TerminalGatherer) FinishCores(summary timing.Summary) {
	if t.bar != nil {
		if err := t.bar.Finish(); err != nil {
			slog.Debug("failed to finish progress bar", "error", err)
		}
		t.bar = nil
	}
	if t.quiet {
		return
	}
	faint.Fprintf(t.out, "    mean=%.4fs min=%.4fs max=%.4fs\n", summary.Mean, summary.Min, summary.Max)
}

func (t *TerminalGatherer) FinishSweep(summaries []timing.Summary) {
	if t.quiet {
		return
	}
	if t.failed > 0 {
		warning.Fprintf(t.out, "!! %d runs exited with a non-zero status; their times are included\n", t.failed)
	}
	dur := time.Since(t.StartedAt).Round(time.Millisecond)
	header.Fprintf(t.out, "== Sweep of %d core counts finished in %s ==\n", len(summaries), dur)
}

// Failed returns how many runs exited with a non-zero status.
func (t *TerminalGatherer) Failed() int {
	return t.failed
}
