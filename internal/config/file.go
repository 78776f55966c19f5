package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig maps to the TOML config file. Pointers distinguish
// "not set" from an explicit false.
type fileConfig struct {
	Repeat    int    `toml:"repeat"`
	MaxCores  int    `toml:"max_cores"`
	Show      *bool  `toml:"show"`
	OutputDir string `toml:"output_dir"`
	Quiet     *bool  `toml:"quiet"`
}

// LoadFile reads a TOML config file and overlays it on Defaults.
func LoadFile(path string) (Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := apply(&cfg, data); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefaultFile loads speedup/config.toml from the XDG config
// directories. Without such a file it returns Defaults.
func LoadDefaultFile() (Config, error) {
	path, ok := findDefaultFile()
	if !ok {
		return Defaults(), nil
	}
	return LoadFile(path)
}

func apply(cfg *Config, data []byte) error {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return err
	}
	if fc.Repeat != 0 {
		cfg.Repeat = fc.Repeat
	}
	if fc.MaxCores != 0 {
		cfg.MaxCores = fc.MaxCores
	}
	if fc.Show != nil {
		cfg.Show = *fc.Show
	}
	if fc.OutputDir != "" {
		cfg.OutputDir = fc.OutputDir
	}
	if fc.Quiet != nil {
		cfg.Quiet = *fc.Quiet
	}
	return nil
}
