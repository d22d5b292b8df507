// Package config resolves where the dock keeps its configuration and manages
// the user preferences stored through Fyne.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config file location
const (
	EnvConfigPath  = "DOCKSTAR_CONFIG"
	ConfigDirName  = "dockstar"
	ConfigFileName = "config.json"
)

// DefaultConfigPath returns the dock config file path. DOCKSTAR_CONFIG
// overrides the per-user default of <user config dir>/dockstar/config.json.
func DefaultConfigPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, ConfigDirName, ConfigFileName), nil
}
