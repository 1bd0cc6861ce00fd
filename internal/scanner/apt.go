// ABOUTME: APT/dpkg scanner for Debian-based systems
// ABOUTME: dpkg-query listing filtered by apt-mark showmanual; pkexec mutations

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

// AptScanner enumerates dpkg-managed packages.
type AptScanner struct{}

// NewAptScanner creates an APT scanner.
func NewAptScanner() *AptScanner { return &AptScanner{} }

// Source returns SourceApt.
func (s *AptScanner) Source() catalog.Source { return catalog.SourceApt }

// Available reports whether dpkg-query exists on this system.
func (s *AptScanner) Available() bool {
	return commandExists("dpkg-query")
}

// Scan lists installed packages via dpkg-query, keeping only manually
// installed ones when apt-mark can tell us which those are.
func (s *AptScanner) Scan(ctx context.Context) ([]catalog.Package, error) {
	out, err := runOutput(ctx, "dpkg-query", "-W",
		"-f=${Package}\t${Version}\t${Installed-Size}\t${binary:Summary}\n")
	if err != nil {
		return nil, err
	}

	manual := s.manualSet(ctx)
	return parseDpkgList(out, manual), nil
}

// manualSet returns the names reported by apt-mark showmanual, or an empty
// set when the command fails (then every package is kept).
func (s *AptScanner) manualSet(ctx context.Context) map[string]bool {
	out, err := runOutput(ctx, "apt-mark", "showmanual")
	if err != nil {
		log.Debug("apt-mark showmanual: %v", err)
		return nil
	}
	set := make(map[string]bool)
	for _, line := range strings.Split(out, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			set[name] = true
		}
	}
	return set
}

// parseDpkgList parses dpkg-query tab-separated output. Malformed rows are
// skipped. When manual is non-empty, dependency-only packages are dropped.
func parseDpkgList(out string, manual map[string]bool) []catalog.Package {
	var pkgs []catalog.Package
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Split(line, "\t")
		if len(parts) < 4 {
			continue
		}
		name := parts[0]
		if name == "" {
			continue
		}
		if len(manual) > 0 && !manual[name] {
			continue
		}

		sizeKB, _ := strconv.ParseUint(parts[2], 10, 64)

		p := catalog.New(name, catalog.SourceApt)
		p.Version = parts[1]
		p.SizeBytes = sizeKB * 1024 // Installed-Size is in KB
		p.Description = strings.Join(parts[3:], " ")
		p.AppType = detectAptAppType(name)
		pkgs = append(pkgs, p)
	}
	return pkgs
}

// detectAptAppType guesses GUI vs CLI from desktop entries and name
// patterns. Heuristic only; Unknown is a fine answer.
func detectAptAppType(name string) catalog.AppType {
	for _, p := range []string{
		filepath.Join("/usr/share/applications", name+".desktop"),
		filepath.Join("/usr/share/applications", strings.ToLower(name)+".desktop"),
	} {
		if _, err := os.Stat(p); err == nil {
			return catalog.AppGUI
		}
	}

	cliMarkers := []string{"lib", "dev", "doc", "data", "common", "core", "base", "utils"}
	for _, m := range cliMarkers {
		if strings.HasPrefix(name, m) || strings.HasSuffix(name, m) {
			return catalog.AppCLI
		}
	}
	return catalog.AppUnknown
}

// Updates refreshes the package index and parses apt's upgradable listing.
func (s *AptScanner) Updates(ctx context.Context) ([]UpdateInfo, error) {
	// Index refresh failure is tolerable; the listing may just be stale.
	if _, err := runOutput(ctx, "apt", "update", "-qq"); err != nil {
		log.Debug("apt update: %v", err)
	}

	out, err := runOutput(ctx, "apt", "list", "--upgradable")
	if err != nil {
		return nil, err
	}
	return parseAptUpgradable(out), nil
}

// parseAptUpgradable parses lines of the form
// "name/suite version arch [upgradable from: old]". The header line and
// anything not in that shape is skipped.
func parseAptUpgradable(out string) []UpdateInfo {
	var updates []UpdateInfo
	for i, line := range strings.Split(out, "\n") {
		if i == 0 || line == "" { // "Listing..." header
			continue
		}
		name, rest, ok := strings.Cut(line, "/")
		if !ok || name == "" {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) < 2 {
			continue
		}
		updates = append(updates, UpdateInfo{Name: name, NewVersion: fields[1]})
	}
	return updates
}

// Uninstall removes the package through pkexec apt.
func (s *AptScanner) Uninstall(ctx context.Context, pkg catalog.Package) error {
	return runPrivileged(ctx, "apt", "remove", "-y", pkg.Name)
}

// Update upgrades only the named package through pkexec apt.
func (s *AptScanner) Update(ctx context.Context, pkg catalog.Package) error {
	return runPrivileged(ctx, "apt", "install", "-y", "--only-upgrade", pkg.Name)
}

// Clean removes packages installed only as dependencies and drops the
// downloaded archive cache.
func (s *AptScanner) Clean(ctx context.Context) error {
	if err := runPrivileged(ctx, "apt", "autoremove", "-y"); err != nil {
		return err
	}
	return runPrivileged(ctx, "apt-get", "clean")
}
