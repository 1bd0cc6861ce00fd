// ABOUTME: Package model shared by scanners, catalog, and the TUI
// ABOUTME: Source/AppType enums, search matching, sort orders, type filters

package catalog

import (
	"fmt"
	"strings"
)

// Source identifies the package-manager family a package came from.
type Source int

const (
	SourceApt Source = iota
	SourceSnap
	SourceFlatpak
	SourceAppImage
	SourceDebFile
)

// String returns the lowercase source label used in status lines.
func (s Source) String() string {
	switch s {
	case SourceApt:
		return "apt"
	case SourceSnap:
		return "snap"
	case SourceFlatpak:
		return "flatpak"
	case SourceAppImage:
		return "appimage"
	case SourceDebFile:
		return "deb"
	default:
		return "unknown"
	}
}

// AppType classifies a package as a GUI app, a CLI tool, or unknown.
type AppType int

const (
	AppUnknown AppType = iota
	AppGUI
	AppCLI
)

func (t AppType) String() string {
	switch t {
	case AppGUI:
		return "GUI"
	case AppCLI:
		return "CLI"
	default:
		return "???"
	}
}

// Package is one discovered unit of installed software.
// Name is unique within a source but not across sources.
type Package struct {
	Name        string
	Version     string
	Description string
	SizeBytes   uint64
	Source      Source
	AppType     AppType

	// InstallPath holds the AppImage file path or the Flatpak application ID.
	InstallPath string

	// HasUpdate is nil until a reconciliation pass has run.
	HasUpdate     *bool
	UpdateVersion string

	// Selected marks the package for a batch operation. Never persisted.
	Selected bool
}

// New creates a Package with only identity fields set.
func New(name string, source Source) Package {
	return Package{Name: name, Source: source}
}

// MatchesSearch reports whether the query matches the name or description,
// case-insensitively.
func (p Package) MatchesSearch(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

// UpdateAvailable reports whether an update is known to be available.
func (p Package) UpdateAvailable() bool {
	return p.HasUpdate != nil && *p.HasUpdate
}

// SizeHuman formats SizeBytes with binary units.
func (p Package) SizeHuman() string {
	return HumanSize(p.SizeBytes)
}

// HumanSize formats a byte count with binary units (KiB, MiB, ...).
func HumanSize(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// SortOrder selects how the catalog orders its packages.
type SortOrder int

const (
	SortSizeDesc SortOrder = iota
	SortSizeAsc
	SortNameAsc
	SortNameDesc
	SortSourceAsc
)

// Next cycles to the following sort order.
func (o SortOrder) Next() SortOrder {
	switch o {
	case SortSizeDesc:
		return SortSizeAsc
	case SortSizeAsc:
		return SortNameAsc
	case SortNameAsc:
		return SortNameDesc
	case SortNameDesc:
		return SortSourceAsc
	default:
		return SortSizeDesc
	}
}

// Label returns the human-readable description shown in the footer.
func (o SortOrder) Label() string {
	switch o {
	case SortSizeDesc:
		return "Size (largest first)"
	case SortSizeAsc:
		return "Size (smallest first)"
	case SortNameAsc:
		return "Name (A-Z)"
	case SortNameDesc:
		return "Name (Z-A)"
	case SortSourceAsc:
		return "Source"
	default:
		return "Unknown"
	}
}

// TypeFilter narrows the catalog view by application type.
type TypeFilter int

const (
	FilterAll TypeFilter = iota
	FilterGUIOnly
	FilterCLIOnly
)

// Next cycles to the following filter.
func (f TypeFilter) Next() TypeFilter {
	switch f {
	case FilterAll:
		return FilterGUIOnly
	case FilterGUIOnly:
		return FilterCLIOnly
	default:
		return FilterAll
	}
}

// Label returns the filter label shown in the footer.
func (f TypeFilter) Label() string {
	switch f {
	case FilterGUIOnly:
		return "GUI Only"
	case FilterCLIOnly:
		return "CLI Only"
	default:
		return "All"
	}
}

// Matches reports whether a package of the given type passes the filter.
func (f TypeFilter) Matches(t AppType) bool {
	switch f {
	case FilterGUIOnly:
		return t == AppGUI
	case FilterCLIOnly:
		return t == AppCLI
	default:
		return true
	}
}

// SourceTab is the source filter tab row above the main list.
type SourceTab int

const (
	TabAll SourceTab = iota
	TabApt
	TabSnap
	TabFlatpak
	TabAppImage
)

// Next cycles to the following tab, wrapping around.
func (t SourceTab) Next() SourceTab {
	if t == TabAppImage {
		return TabAll
	}
	return t + 1
}

// Prev cycles to the preceding tab, wrapping around.
func (t SourceTab) Prev() SourceTab {
	if t == TabAll {
		return TabAppImage
	}
	return t - 1
}

// Label returns the tab caption.
func (t SourceTab) Label() string {
	switch t {
	case TabApt:
		return "APT"
	case TabSnap:
		return "Snap"
	case TabFlatpak:
		return "Flatpak"
	case TabAppImage:
		return "AppImage"
	default:
		return "All"
	}
}

// Matches reports whether a package from the given source belongs on this tab.
// Deb-file installs are managed by dpkg, so they show under the APT tab.
func (t SourceTab) Matches(s Source) bool {
	switch t {
	case TabApt:
		return s == SourceApt || s == SourceDebFile
	case TabSnap:
		return s == SourceSnap
	case TabFlatpak:
		return s == SourceFlatpak
	case TabAppImage:
		return s == SourceAppImage
	default:
		return true
	}
}
