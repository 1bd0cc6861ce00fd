// ABOUTME: Tests for dpkg-query and apt upgradable-listing parsers
// ABOUTME: Fixture strings mirror real tool output including malformed rows

package scanner

import (
	"testing"

	"github.com/mauromedda/pkgscope/internal/catalog"
)

func TestParseDpkgList(t *testing.T) {
	t.Parallel()

	out := "htop\t3.0.5-7\t352\tinteractive processes viewer\n" +
		"vim\t2:8.2.3995\t4096\tVi IMproved - enhanced vi editor\n" +
		"garbled line without tabs\n" +
		"incomplete\t1.0\n" +
		"\n"

	pkgs := parseDpkgList(out, nil)
	if len(pkgs) != 2 {
		t.Fatalf("parsed %d packages, want 2", len(pkgs))
	}

	if pkgs[0].Name != "htop" || pkgs[0].Version != "3.0.5-7" {
		t.Errorf("first = %s %s", pkgs[0].Name, pkgs[0].Version)
	}
	if pkgs[0].SizeBytes != 352*1024 {
		t.Errorf("SizeBytes = %d, want %d (Installed-Size is KB)", pkgs[0].SizeBytes, 352*1024)
	}
	if pkgs[1].Description != "Vi IMproved - enhanced vi editor" {
		t.Errorf("description = %q", pkgs[1].Description)
	}
	for _, p := range pkgs {
		if p.Source != catalog.SourceApt {
			t.Errorf("%s source = %s, want apt", p.Name, p.Source)
		}
	}
}

func TestParseDpkgList_ManualFilter(t *testing.T) {
	t.Parallel()

	out := "htop\t3.0.5\t352\tviewer\n" +
		"libfoo1\t1.0\t100\tshared library\n"

	manual := map[string]bool{"htop": true}
	pkgs := parseDpkgList(out, manual)
	if len(pkgs) != 1 || pkgs[0].Name != "htop" {
		t.Fatalf("manual filter kept %d packages, want just htop", len(pkgs))
	}

	// Empty manual set keeps everything (apt-mark unavailable fallback).
	pkgs = parseDpkgList(out, nil)
	if len(pkgs) != 2 {
		t.Fatalf("nil manual set kept %d packages, want 2", len(pkgs))
	}
}

func TestParseAptUpgradable(t *testing.T) {
	t.Parallel()

	out := "Listing... Done\n" +
		"vim/jammy-updates 2:8.2.4919 amd64 [upgradable from: 2:8.2.3995]\n" +
		"firefox/jammy 131.0 amd64 [upgradable from: 130.0]\n" +
		"line without slash\n" +
		"\n"

	updates := parseAptUpgradable(out)
	if len(updates) != 2 {
		t.Fatalf("parsed %d updates, want 2", len(updates))
	}
	if updates[0].Name != "vim" || updates[0].NewVersion != "2:8.2.4919" {
		t.Errorf("first = %+v", updates[0])
	}
	if updates[1].Name != "firefox" || updates[1].NewVersion != "131.0" {
		t.Errorf("second = %+v", updates[1])
	}
}

func TestDetectAptAppType_NameHeuristics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want catalog.AppType
	}{
		{"libssl3", catalog.AppCLI},
		{"python3-dev", catalog.AppCLI},
		{"fonts-common", catalog.AppCLI},
		{"coreutils", catalog.AppCLI},
		{"some-random-package", catalog.AppUnknown},
	}

	for _, tt := range tests {
		if got := detectAptAppType(tt.name); got != tt.want {
			t.Errorf("detectAptAppType(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}
