package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/adrg/xdg"
	"github.com/programme-lv/speedup/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// calls counts how often the command reached its action.
var calls int

func parse(t *testing.T, args ...string) (config.Config, error) {
	t.Helper()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()

	var got config.Config
	cmd := newCommand(func(_ context.Context, cfg config.Config) error {
		got = cfg
		calls++
		return nil
	})
	cmd.Writer = &bytes.Buffer{}
	cmd.ErrWriter = &bytes.Buffer{}

	err := cmd.Run(context.Background(), append([]string{"speedup"}, args...))
	return got, err
}

func TestCommand_Defaults(t *testing.T) {
	cfg, err := parse(t, "./kernel")
	require.NoError(t, err)
	assert.Equal(t, "./kernel", cfg.Executable)
	assert.Equal(t, 10, cfg.Repeat)
	assert.Equal(t, runtime.NumCPU(), cfg.MaxCores)
	assert.False(t, cfg.Show)
	assert.Equal(t, ".", cfg.OutputDir)
}

func TestCommand_Flags(t *testing.T) {
	cfg, err := parse(t, "-r", "3", "--max_cores", "4", "--show", "-o", "plots", "./kernel")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Repeat)
	assert.Equal(t, 4, cfg.MaxCores)
	assert.True(t, cfg.Show)
	assert.Equal(t, "plots", cfg.OutputDir)

	cfg, err = parse(t, "--repeat", "5", "-m", "2", "./kernel")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Repeat)
	assert.Equal(t, 2, cfg.MaxCores)
}

func TestCommand_Env(t *testing.T) {
	t.Setenv(config.EnvRepeat, "7")

	cfg, err := parse(t, "./kernel")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Repeat)

	cfg, err = parse(t, "-r", "2", "./kernel")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Repeat)
}

func TestCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "speedup.toml")
	require.NoError(t, os.WriteFile(path, []byte("repeat = 4\nmax_cores = 3\n"), 0644))

	cfg, err := parse(t, "-c", path, "-m", "8", "./kernel")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Repeat)
	assert.Equal(t, 8, cfg.MaxCores)

	_, err = parse(t, "-c", filepath.Join(t.TempDir(), "missing.toml"), "./kernel")
	require.Error(t, err)
}

func TestCommand_Invalid(t *testing.T) {
	calls = 0
	defer func() { assert.Zero(t, calls, "invalid arguments must not reach the sweep") }()

	_, err := parse(t)
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = parse(t, "a", "b")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = parse(t, "-r", "0", "./kernel")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = parse(t, "-m", "0", "./kernel")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = parse(t, "-r", "many", "./kernel")
	require.Error(t, err)
}
