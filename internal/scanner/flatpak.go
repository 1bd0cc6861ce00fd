// ABOUTME: Flatpak scanner: tab-separated flatpak list/remote-ls parsing
// ABOUTME: Mutations address the application ID kept in InstallPath

package scanner

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/mauromedda/pkgscope/internal/catalog"
)

// FlatpakScanner enumerates installed Flatpak applications (not runtimes).
type FlatpakScanner struct{}

// NewFlatpakScanner creates a Flatpak scanner.
func NewFlatpakScanner() *FlatpakScanner { return &FlatpakScanner{} }

// Source returns SourceFlatpak.
func (s *FlatpakScanner) Source() catalog.Source { return catalog.SourceFlatpak }

// Available reports whether the flatpak binary is installed.
func (s *FlatpakScanner) Available() bool {
	if _, err := os.Stat("/usr/bin/flatpak"); err == nil {
		return true
	}
	return commandExists("flatpak")
}

// Scan lists installed applications with their ID, version, size, and
// description in one tab-separated call.
func (s *FlatpakScanner) Scan(ctx context.Context) ([]catalog.Package, error) {
	out, err := runOutput(ctx, "flatpak", "list", "--app",
		"--columns=name,application,version,size,description")
	if err != nil {
		return nil, err
	}
	return parseFlatpakList(out), nil
}

// parseFlatpakList parses flatpak's tab-separated columns. Rows with fewer
// than four columns are skipped.
func parseFlatpakList(out string) []catalog.Package {
	var pkgs []catalog.Package
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Split(line, "\t")
		if len(parts) < 4 {
			continue
		}

		p := catalog.New(parts[0], catalog.SourceFlatpak)
		p.InstallPath = parts[1] // application ID, e.g. org.gimp.GIMP
		p.Version = parts[2]
		p.SizeBytes = ParseHumanSize(parts[3])
		if len(parts) > 4 {
			p.Description = parts[4]
		}
		// Flatpak distributes desktop applications almost exclusively.
		p.AppType = catalog.AppGUI
		pkgs = append(pkgs, p)
	}
	return pkgs
}

// ParseHumanSize converts strings like "1.2 GB" or "512 MB" to bytes.
// Unparseable input yields zero.
func ParseHumanSize(s string) uint64 {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return 0
	}

	num, err := strconv.ParseFloat(strings.ReplaceAll(fields[0], ",", "."), 64)
	if err != nil {
		return 0
	}

	unit := "B"
	if len(fields) > 1 {
		unit = strings.ToUpper(fields[1])
	}

	var mult float64
	switch unit {
	case "B":
		mult = 1
	case "KB", "K":
		mult = 1 << 10
	case "MB", "M":
		mult = 1 << 20
	case "GB", "G":
		mult = 1 << 30
	case "TB", "T":
		mult = 1 << 40
	default:
		mult = 1
	}
	return uint64(num * mult)
}

// Updates parses flatpak remote-ls --updates.
func (s *FlatpakScanner) Updates(ctx context.Context) ([]UpdateInfo, error) {
	out, err := runOutput(ctx, "flatpak", "remote-ls", "--updates", "--columns=name,version")
	if err != nil {
		return nil, err
	}

	var updates []UpdateInfo
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Split(line, "\t")
		if len(parts) < 2 || parts[0] == "" {
			continue
		}
		updates = append(updates, UpdateInfo{Name: parts[0], NewVersion: parts[1]})
	}
	return updates, nil
}

// appID prefers the application ID over the display name for mutations.
func appID(pkg catalog.Package) string {
	if pkg.InstallPath != "" {
		return pkg.InstallPath
	}
	return pkg.Name
}

// Uninstall removes the application. Flatpak manages per-user installs, so
// no privilege elevation is needed.
func (s *FlatpakScanner) Uninstall(ctx context.Context, pkg catalog.Package) error {
	return runStatus(ctx, "flatpak", "uninstall", "-y", appID(pkg))
}

// Update upgrades the application in place.
func (s *FlatpakScanner) Update(ctx context.Context, pkg catalog.Package) error {
	return runStatus(ctx, "flatpak", "update", "-y", appID(pkg))
}
