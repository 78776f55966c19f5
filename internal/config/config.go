package config

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrInvalid is returned by Validate for any malformed setting.
var ErrInvalid = errors.New("invalid configuration")

// Config holds everything a sweep needs. It is not modified once validated.
type Config struct {
	Executable string
	Repeat     int
	MaxCores   int
	Show       bool
	OutputDir  string
	Quiet      bool
	Verbose    bool
}

const DefaultRepeat = 10

func Defaults() Config {
	return Config{
		Repeat:    DefaultRepeat,
		MaxCores:  runtime.NumCPU(),
		OutputDir: ".",
	}
}

func (c Config) Validate() error {
	if c.Executable == "" {
		return fmt.Errorf("%w: executable is required", ErrInvalid)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("%w: repeat must be positive, got %d", ErrInvalid, c.Repeat)
	}
	if c.MaxCores < 1 {
		return fmt.Errorf("%w: max cores must be positive, got %d", ErrInvalid, c.MaxCores)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory must not be empty", ErrInvalid)
	}
	return nil
}
