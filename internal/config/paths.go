package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "speedup"

var configRelPath = filepath.Join(appName, "config.toml")

// DefaultFilePath returns where the user's config file lives:
// $XDG_CONFIG_HOME/speedup/config.toml.
func DefaultFilePath() string {
	return filepath.Join(xdg.ConfigHome, configRelPath)
}

// findDefaultFile searches the user and system XDG config directories.
func findDefaultFile() (string, bool) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return "", false
	}
	return path, true
}
