package timing

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"time"
)

// Cmd is a single timed invocation of the program under test.
type Cmd struct {
	cmd     *exec.Cmd
	started bool
	startAt time.Time
}

func newCmd(ctx context.Context, args []string, stdout, stderr io.Writer) *Cmd {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return &Cmd{cmd: cmd}
}

// Start launches the process. The clock starts just before the launch.
func (c *Cmd) Start() error {
	if c.started {
		panic("process should not be started twice")
	}
	c.started = true

	c.startAt = time.Now()
	return c.cmd.Start()
}

// Wait blocks until the process exits and returns the elapsed wall time and
// exit code. A non-zero exit is not an error.
func (c *Cmd) Wait() (time.Duration, int, error) {
	if !c.started {
		panic("process should be started before waiting")
	}

	err := c.cmd.Wait()
	wall := time.Since(c.startAt)
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return wall, -1, err
		}
	}
	return wall, c.cmd.ProcessState.ExitCode(), nil
}
