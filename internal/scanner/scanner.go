// ABOUTME: Scanner capability contract shared by all package-manager sources
// ABOUTME: One implementation per family; selected at runtime by source kind

package scanner

import (
	"context"

	"github.com/mauromedda/pkgscope/internal/catalog"
)

// UpdateInfo is one entry of a source's upgrade listing.
type UpdateInfo struct {
	Name       string
	NewVersion string
}

// Scanner is the uniform capability surface over one package-manager family.
//
// Available is a cheap presence probe and never errors; a missing tool is a
// normal false. Scan returns the installed packages for the source; an empty
// system yields an empty slice, not an error, and malformed rows from the
// underlying tool are skipped. Uninstall and Update are side-effecting and
// may trigger a privilege-elevation prompt; the caller decides how to host
// that prompt.
type Scanner interface {
	Available() bool
	Scan(ctx context.Context) ([]catalog.Package, error)
	Updates(ctx context.Context) ([]UpdateInfo, error)
	Uninstall(ctx context.Context, pkg catalog.Package) error
	Update(ctx context.Context, pkg catalog.Package) error
	Source() catalog.Source
}

// DefaultScanners returns the scanner set for this system in scan order.
// Extra AppImage search directories come from configuration.
func DefaultScanners(appImageDirs []string) []Scanner {
	return []Scanner{
		NewAptScanner(),
		NewSnapScanner(),
		NewFlatpakScanner(),
		NewAppImageScanner(appImageDirs),
	}
}

// ForSource returns the scanner responsible for packages of the given
// source. Deb-file installs are managed through dpkg/apt.
func ForSource(scanners []Scanner, source catalog.Source) Scanner {
	if source == catalog.SourceDebFile {
		source = catalog.SourceApt
	}
	for _, s := range scanners {
		if s.Source() == source {
			return s
		}
	}
	return nil
}
