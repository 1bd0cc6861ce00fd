// ABOUTME: User settings loading from the YAML config file
// ABOUTME: Missing file yields defaults; CLI flags override loaded values

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds user-tunable behavior.
type Settings struct {
	// Theme selects a built-in theme name or a path to a theme JSON file.
	Theme string `yaml:"theme,omitempty"`
	// AppImageDirs lists extra directories to search for AppImage files,
	// in addition to the standard locations.
	AppImageDirs []string `yaml:"appimage_dirs,omitempty"`
	// ConfirmBatch inserts a review list before a batch update starts.
	// Off by default: picking a source starts the batch immediately.
	ConfirmBatch *bool `yaml:"confirm_batch,omitempty"`
}

// Defaults returns the settings used when no config file exists.
func Defaults() *Settings {
	return &Settings{Theme: "default"}
}

// Load reads settings from path, or from the default location when path is
// empty. A missing file is not an error: defaults are returned.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = File()
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	s := Defaults()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if s.Theme == "" {
		s.Theme = "default"
	}
	return s, nil
}

// ConfirmBeforeBatch reports whether batch updates require a review step.
// Safe on a nil receiver: absent settings mean the default, off.
func (s *Settings) ConfirmBeforeBatch() bool {
	if s == nil || s.ConfirmBatch == nil {
		return false
	}
	return *s.ConfirmBatch
}

// Save writes the settings to the default location, creating the config
// directory if needed.
func (s *Settings) Save() error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(File(), data, 0o644)
}
