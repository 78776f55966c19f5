package timing

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// Sample is one measured run of the program under test.
type Sample struct {
	Cores    int
	Index    int
	Wall     time.Duration
	ExitCode int
}

func (s Sample) Seconds() float64 {
	return s.Wall.Seconds()
}

// Runner runs a command to completion and reports how long it took.
type Runner interface {
	Run(ctx context.Context, args []string) (Sample, error)
}

// ExecRunner runs commands as OS processes. Nil writers inherit the
// standard streams of this process.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r *ExecRunner) Run(ctx context.Context, args []string) (Sample, error) {
	if len(args) == 0 {
		return Sample{}, fmt.Errorf("empty command")
	}

	stdout, stderr := r.Stdout, r.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	cmd := newCmd(ctx, args, stdout, stderr)
	if err := cmd.Start(); err != nil {
		return Sample{}, fmt.Errorf("failed to start %s: %w", args[0], err)
	}

	wall, exitCode, err := cmd.Wait()
	if err != nil {
		return Sample{}, fmt.Errorf("failed to wait for %s: %w", args[0], err)
	}

	return Sample{Wall: wall, ExitCode: exitCode}, nil
}
