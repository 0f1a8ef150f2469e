// Package fs resolves filesystem locations used by utsushi.
package fs

import (
	"os"
	"path/filepath"
)

// appName is the directory name used under the user's config directory.
const appName = "utsushi"

// DefaultConfigDir returns the directory searched for the utsushi config file.
// Uses XDG_CONFIG_HOME if set, otherwise falls back to ~/.config/utsushi,
// or an empty string if home is unavailable.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}
