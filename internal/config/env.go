package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// Environment variables read by the command line flags.
const (
	EnvRepeat    = "SPEEDUP_REPEAT"
	EnvMaxCores  = "SPEEDUP_MAX_CORES"
	EnvShow      = "SPEEDUP_SHOW"
	EnvOutputDir = "SPEEDUP_OUTPUT_DIR"
)

// LoadDotEnv loads variables from a .env file into the process environment
// without overriding ones that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}
