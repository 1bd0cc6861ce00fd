// ABOUTME: Tests for AppImage filename parsing and filesystem discovery
// ABOUTME: Uses t.TempDir fixtures with fake AppImage files

package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mauromedda/pkgscope/internal/catalog"
)

func TestExtractAppImageName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     string
	}{
		{"Obsidian-1.6.7.AppImage", "Obsidian"},
		{"balenaEtcher-1.18.11-x64.AppImage", "balenaEtcher"},
		{"Inkscape_v1.3_x86_64.appimage", "Inkscape"},
		{"krita-5.2.2-x86_64.AppImage", "krita"},
		{"simpletool.AppImage", "simpletool"},
	}

	for _, tt := range tests {
		if got := ExtractAppImageName(tt.filename); got != tt.want {
			t.Errorf("ExtractAppImageName(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestExtractAppImageVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     string
	}{
		{"Obsidian-1.6.7.AppImage", "1.6.7"},
		{"Inkscape_v1.3_x86_64.appimage", "1.3"},
		{"krita-5.2.2-x86_64.AppImage", "5.2.2"},
		{"noversion.AppImage", "unknown"},
	}

	for _, tt := range tests {
		if got := ExtractAppImageVersion(tt.filename); got != tt.want {
			t.Errorf("ExtractAppImageVersion(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestAppImageScanner_Scan(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Obsidian-1.6.7.AppImage"), []byte("fake"), 0o755)
	writeFile(t, filepath.Join(dir, "README.txt"), []byte("not an appimage"), 0o644)

	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(nested, "krita-5.2.2-x86_64.AppImage"), []byte("fake"), 0o755)

	// Deeper than the depth limit; must not be found.
	deep := filepath.Join(dir, "a", "b", "c", "d")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(deep, "Hidden-1.0.0.AppImage"), []byte("fake"), 0o755)

	s := &AppImageScanner{dirs: []string{dir}}
	pkgs, err := s.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	names := map[string]bool{}
	for _, p := range pkgs {
		names[p.Name] = true
		if p.InstallPath == "" {
			t.Errorf("%s has no InstallPath", p.Name)
		}
		if p.SizeBytes == 0 {
			t.Errorf("%s has zero size", p.Name)
		}
	}
	if !names["Obsidian"] || !names["krita"] {
		t.Errorf("expected Obsidian and krita, got %v", names)
	}
	if names["Hidden"] {
		t.Error("file below depth limit should not be discovered")
	}
	if len(pkgs) != 2 {
		t.Errorf("found %d packages, want 2", len(pkgs))
	}
}

func TestAppImageScanner_ScanMissingDir(t *testing.T) {
	t.Parallel()

	s := &AppImageScanner{dirs: []string{"/no/such/directory"}}
	pkgs, err := s.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan of missing dir: %v", err)
	}
	if len(pkgs) != 0 {
		t.Errorf("found %d packages in a missing dir", len(pkgs))
	}
}

func TestAppImageScanner_Uninstall(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "Tool-1.0.0.AppImage")
	writeFile(t, path, []byte("fake"), 0o755)

	s := NewAppImageScanner(nil)
	pkg := catalog.Package{Name: "Tool", Source: catalog.SourceAppImage, InstallPath: path}
	if err := s.Uninstall(context.Background(), pkg); err != nil {
		t.Fatalf("Uninstall: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("AppImage file still exists after uninstall")
	}

	// No path recorded is an error, not a crash.
	noPath := catalog.Package{Name: "Tool", Source: catalog.SourceAppImage}
	if err := s.Uninstall(context.Background(), noPath); err == nil {
		t.Error("Uninstall without a path should fail")
	}
}

func writeFile(t *testing.T, path string, data []byte, mode os.FileMode) {
	t.Helper()
	if err := os.WriteFile(path, data, mode); err != nil {
		t.Fatal(err)
	}
}
