// ABOUTME: Snap scanner: snap list/info/refresh parsing, du-based sizes
// ABOUTME: Core snaps (snapd, core*, bare) are never shown

package scanner

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mauromedda/pkgscope/internal/catalog"
	"github.com/mauromedda/pkgscope/internal/log"
)

// Snaps whose names commonly belong to GUI applications. Used as a fallback
// when no desktop entry is found.
var guiSnaps = []string{
	"firefox", "chromium", "vlc", "spotify", "slack", "discord",
	"code", "sublime-text", "gimp", "inkscape", "blender",
}

// SnapScanner enumerates installed snaps.
type SnapScanner struct{}

// NewSnapScanner creates a Snap scanner.
func NewSnapScanner() *SnapScanner { return &SnapScanner{} }

// Source returns SourceSnap.
func (s *SnapScanner) Source() catalog.Source { return catalog.SourceSnap }

// Available reports whether the snap binary is installed.
func (s *SnapScanner) Available() bool {
	if _, err := os.Stat("/usr/bin/snap"); err == nil {
		return true
	}
	return commandExists("snap")
}

// Scan parses snap list and enriches each entry with size and summary.
func (s *SnapScanner) Scan(ctx context.Context) ([]catalog.Package, error) {
	out, err := runOutput(ctx, "snap", "list")
	if err != nil {
		return nil, err
	}

	var pkgs []catalog.Package
	for _, entry := range parseSnapList(out) {
		p := entry
		p.SizeBytes = snapSize(ctx, p.Name)
		if desc := snapSummary(ctx, p.Name); desc != "" {
			p.Description = desc
		}
		pkgs = append(pkgs, p)
	}
	return pkgs, nil
}

// parseSnapList parses the whitespace-aligned snap list table, skipping the
// header row and core snaps.
func parseSnapList(out string) []catalog.Package {
	var pkgs []catalog.Package
	for i, line := range strings.Split(out, "\n") {
		if i == 0 {
			continue // Name Version Rev ... header
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		name := fields[0]
		if name == "snapd" || strings.HasPrefix(name, "core") || strings.HasPrefix(name, "bare") {
			continue
		}

		p := catalog.New(name, catalog.SourceSnap)
		p.Version = fields[1]
		p.AppType = detectSnapAppType(name)
		pkgs = append(pkgs, p)
	}
	return pkgs
}

// snapSize measures the mounted snap directory with du.
func snapSize(ctx context.Context, name string) uint64 {
	out, err := runOutput(ctx, "du", "-sb", filepath.Join("/snap", name, "current"))
	if err != nil {
		log.Debug("snap size %s: %v", name, err)
		return 0
	}
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return 0
	}
	n, _ := strconv.ParseUint(fields[0], 10, 64)
	return n
}

// snapSummary pulls the one-line summary from snap info.
func snapSummary(ctx context.Context, name string) string {
	out, err := runOutput(ctx, "snap", "info", name)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(out, "\n") {
		if rest, ok := strings.CutPrefix(line, "summary:"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

// detectSnapAppType checks snapd's desktop entries, then known GUI names.
func detectSnapAppType(name string) catalog.AppType {
	matches, err := filepath.Glob("/var/lib/snapd/desktop/applications/" + name + "_*.desktop")
	if err == nil && len(matches) > 0 {
		return catalog.AppGUI
	}
	for _, g := range guiSnaps {
		if strings.Contains(name, g) {
			return catalog.AppGUI
		}
	}
	return catalog.AppUnknown
}

// Updates parses snap refresh --list.
func (s *SnapScanner) Updates(ctx context.Context) ([]UpdateInfo, error) {
	out, err := runOutput(ctx, "snap", "refresh", "--list")
	if err != nil {
		return nil, err
	}
	return parseSnapRefreshList(out), nil
}

// parseSnapRefreshList parses the refresh table: name then new version,
// header row skipped.
func parseSnapRefreshList(out string) []UpdateInfo {
	var updates []UpdateInfo
	for i, line := range strings.Split(out, "\n") {
		if i == 0 {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		updates = append(updates, UpdateInfo{Name: fields[0], NewVersion: fields[1]})
	}
	return updates
}

// Uninstall removes the snap through pkexec.
func (s *SnapScanner) Uninstall(ctx context.Context, pkg catalog.Package) error {
	return runPrivileged(ctx, "snap", "remove", pkg.Name)
}

// Update refreshes the snap through pkexec.
func (s *SnapScanner) Update(ctx context.Context, pkg catalog.Package) error {
	return runPrivileged(ctx, "snap", "refresh", pkg.Name)
}
