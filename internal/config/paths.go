// ABOUTME: Filesystem paths for pkgscope configuration
// ABOUTME: Follows the XDG base directory layout under ~/.config

package config

import (
	"os"
	"path/filepath"
)

const appDirName = "pkgscope"

// Dir returns the config directory (~/.config/pkgscope, or
// $XDG_CONFIG_HOME/pkgscope when set).
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+appDirName)
	}
	return filepath.Join(home, ".config", appDirName)
}

// File returns the path of the YAML config file.
func File() string {
	return filepath.Join(Dir(), "config.yaml")
}

// ThemesDir returns the directory for user theme files.
func ThemesDir() string {
	return filepath.Join(Dir(), "themes")
}
