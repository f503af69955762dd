// Package config resolves the per-user directories cardbox writes to.
package config

import (
	"os"
	"path/filepath"
)

// GetCardboxDir returns the cardbox config directory, honoring
// XDG_CONFIG_HOME and falling back to ~/.config.
func GetCardboxDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".", ".cardbox")
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "cardbox")
}

// GetLogsDir returns the directory debug logs are written to.
func GetLogsDir() string {
	return filepath.Join(GetCardboxDir(), "logs")
}

// EnsureDirs creates the config and log directories if missing.
func EnsureDirs() error {
	if err := os.MkdirAll(GetCardboxDir(), 0755); err != nil {
		return err
	}
	return os.MkdirAll(GetLogsDir(), 0755)
}
