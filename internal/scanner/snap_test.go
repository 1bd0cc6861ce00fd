// ABOUTME: Tests for snap list and snap refresh --list parsing
// ABOUTME: Verifies core-snap filtering and header handling

package scanner

import "testing"

func TestParseSnapList(t *testing.T) {
	t.Parallel()

	out := "Name      Version   Rev    Tracking       Publisher   Notes\n" +
		"firefox   130.0.1   4793   latest/stable  mozilla**   -\n" +
		"snapd     2.63      21759  latest/stable  canonical** snapd\n" +
		"core22    20240823  1612   latest/stable  canonical** base\n" +
		"bare      1.0       5      latest/stable  canonical** base\n" +
		"vlc       3.0.20    3777   latest/stable  videolan**  -\n" +
		"short row\n"

	pkgs := parseSnapList(out)
	if len(pkgs) != 2 {
		t.Fatalf("parsed %d packages, want 2 (core snaps filtered)", len(pkgs))
	}
	if pkgs[0].Name != "firefox" || pkgs[0].Version != "130.0.1" {
		t.Errorf("first = %s %s", pkgs[0].Name, pkgs[0].Version)
	}
	if pkgs[1].Name != "vlc" {
		t.Errorf("second = %s, want vlc", pkgs[1].Name)
	}
}

func TestParseSnapRefreshList(t *testing.T) {
	t.Parallel()

	out := "Name     Version  Rev   Size   Publisher  Notes\n" +
		"firefox  131.0    4800  70MB   mozilla**  -\n" +
		"\n"

	updates := parseSnapRefreshList(out)
	if len(updates) != 1 {
		t.Fatalf("parsed %d updates, want 1", len(updates))
	}
	if updates[0].Name != "firefox" || updates[0].NewVersion != "131.0" {
		t.Errorf("update = %+v", updates[0])
	}
}
