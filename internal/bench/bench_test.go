package bench_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/programme-lv/speedup/internal/bench"
	"github.com/programme-lv/speedup/internal/config"
	"github.com/programme-lv/speedup/internal/timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sleepStub sleeps for 1/N seconds when called with N.
const sleepStub = `#!/bin/sh
sleep "$(awk "BEGIN { print 1 / $1 }")"
`

type recordingViewer struct {
	opened []string
}

func (v *recordingViewer) Open(_ context.Context, path string) error {
	v.opened = append(v.opened, path)
	return nil
}

func writeStub(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "stub")
	require.NoError(t, os.WriteFile(path, []byte(sleepStub), 0755))
	return path
}

func TestRun_SleepStub(t *testing.T) {
	if testing.Short() {
		t.Skip("runs real processes for several seconds")
	}
	dir := t.TempDir()

	cfg := config.Defaults()
	cfg.Executable = writeStub(t, dir)
	cfg.Repeat = 3
	cfg.MaxCores = 4
	cfg.OutputDir = dir
	cfg.Quiet = true

	var out bytes.Buffer
	b := &bench.Bench{
		Runner: &timing.ExecRunner{},
		Out:    &out,
	}

	start := time.Now()
	path, err := b.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 3*(time.Second+time.Second/2+time.Second/3+time.Second/4))

	assert.Equal(t, filepath.Join(dir, "stub.png"), path)
	assert.FileExists(t, path)

	line := strings.TrimSpace(out.String())
	require.True(t, strings.HasPrefix(line, "["), line)
	assert.Equal(t, 3, strings.Count(line, "["))
}

func TestRun_MeansDoNotIncrease(t *testing.T) {
	if testing.Short() {
		t.Skip("runs real processes for several seconds")
	}
	dir := t.TempDir()

	cfg := config.Defaults()
	cfg.Executable = writeStub(t, dir)
	cfg.Repeat = 3
	cfg.MaxCores = 4
	cfg.OutputDir = dir

	gath := &meanRecorder{}
	b := &bench.Bench{
		Runner:   &timing.ExecRunner{},
		Gatherer: gath,
		Out:      &bytes.Buffer{},
	}
	_, err := b.Run(context.Background(), cfg)
	require.NoError(t, err)

	require.Len(t, gath.means, 4)
	for i := 1; i < len(gath.means); i++ {
		assert.LessOrEqual(t, gath.means[i], gath.means[i-1], "cores=%d", i+1)
	}
}

func TestRun_MissingExecutable(t *testing.T) {
	dir := t.TempDir()

	cfg := config.Defaults()
	cfg.Executable = "nonexistent_binary"
	cfg.Repeat = 2
	cfg.MaxCores = 2
	cfg.OutputDir = dir

	var out bytes.Buffer
	b := &bench.Bench{Runner: &timing.ExecRunner{}, Out: &out}
	_, err := b.Run(context.Background(), cfg)
	require.Error(t, err)

	assert.NoFileExists(t, filepath.Join(dir, "nonexistent_binary.png"))
	assert.Empty(t, out.String())
}

func TestRun_Show(t *testing.T) {
	dir := t.TempDir()

	cfg := config.Defaults()
	cfg.Executable = "true"
	cfg.Repeat = 1
	cfg.MaxCores = 2
	cfg.OutputDir = dir
	cfg.Show = true
	cfg.Quiet = true

	viewer := &recordingViewer{}
	b := &bench.Bench{Runner: &fixedRunner{}, Viewer: viewer, Out: &bytes.Buffer{}}
	path, err := b.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, viewer.opened)
}

func TestRun_ZeroRepeatWritesNothing(t *testing.T) {
	dir := t.TempDir()

	cfg := config.Defaults()
	cfg.Executable = "kernel"
	cfg.Repeat = 0
	cfg.MaxCores = 2
	cfg.OutputDir = dir

	var out bytes.Buffer
	b := &bench.Bench{Runner: &fixedRunner{}, Out: &out}
	_, err := b.Run(context.Background(), cfg)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "kernel.png"))
	assert.Empty(t, out.String())
}

type fixedRunner struct{}

func (fixedRunner) Run(context.Context, []string) (timing.Sample, error) {
	return timing.Sample{Wall: 10 * time.Millisecond}, nil
}

type meanRecorder struct {
	means []float64
}

func (m *meanRecorder) StartSweep(int, int)          {}
func (m *meanRecorder) StartCores(int)               {}
func (m *meanRecorder) FinishRun(timing.Sample)      {}
func (m *meanRecorder) FinishSweep([]timing.Summary) {}
func (m *meanRecorder) FinishCores(s timing.Summary) {
	m.means = append(m.means, s.Mean)
}
