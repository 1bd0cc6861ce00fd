// ABOUTME: Tests for YAML settings loading
// ABOUTME: Covers the missing-file default path and field parsing

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Theme != "default" {
		t.Errorf("theme = %q, want default", s.Theme)
	}
	if s.ConfirmBeforeBatch() {
		t.Error("batch review should default to off")
	}
	if len(s.AppImageDirs) != 0 {
		t.Errorf("AppImageDirs = %v, want empty", s.AppImageDirs)
	}
}

func TestLoad_ParsesFields(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "theme: gruvbox\n" +
		"appimage_dirs:\n" +
		"  - /opt/tools\n" +
		"  - ~/bin\n" +
		"confirm_batch: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Theme != "gruvbox" {
		t.Errorf("theme = %q", s.Theme)
	}
	if len(s.AppImageDirs) != 2 || s.AppImageDirs[0] != "/opt/tools" {
		t.Errorf("AppImageDirs = %v", s.AppImageDirs)
	}
	if !s.ConfirmBeforeBatch() {
		t.Error("confirm_batch: true should enable the review step")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("invalid YAML should be an error")
	}
}

func TestLoad_EmptyThemeFallsBack(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("confirm_batch: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Theme != "default" {
		t.Errorf("theme = %q, want default fallback", s.Theme)
	}
	if !s.ConfirmBeforeBatch() {
		t.Error("explicit confirm_batch: true should stay on")
	}
}

func TestSave_RoundTrips(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	on := true
	s := &Settings{
		Theme:        "gruvbox",
		AppImageDirs: []string{"/opt/tools"},
		ConfirmBatch: &on,
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(File()); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	got, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Theme != "gruvbox" {
		t.Errorf("theme = %q, want gruvbox", got.Theme)
	}
	if len(got.AppImageDirs) != 1 || got.AppImageDirs[0] != "/opt/tools" {
		t.Errorf("AppImageDirs = %v", got.AppImageDirs)
	}
	if !got.ConfirmBeforeBatch() {
		t.Error("confirm_batch: true lost in round trip")
	}
}

func TestSave_DefaultsStayDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := Defaults().Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Theme != "default" {
		t.Errorf("theme = %q, want default", got.Theme)
	}
	if got.ConfirmBeforeBatch() {
		t.Error("saved defaults should leave the review step off")
	}
}
