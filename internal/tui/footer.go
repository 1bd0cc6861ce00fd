// ABOUTME: FooterModel is a leaf model rendering a two-line status bar
// ABOUTME: Line 1: per-source counts + update count. Line 2: keys, sort/filter, scan status

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pkgscope/internal/catalog"
	"github.com/mauromedda/pkgscope/pkg/tui/width"
)

// FooterModel renders the status bar at the bottom of the terminal.
type FooterModel struct {
	stats       catalog.Stats
	updateCount int
	sortLabel   string
	filterLabel string
	search      string
	searching   bool
	scanStatus  string
	width       int
}

// NewFooterModel creates an empty FooterModel.
func NewFooterModel() FooterModel {
	return FooterModel{}
}

// Init returns nil; no commands needed for a leaf model.
func (m FooterModel) Init() tea.Cmd { return nil }

// Update handles window sizing.
func (m FooterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
	}
	return m, nil
}

// WithStats returns a FooterModel with the per-source counts set.
func (m FooterModel) WithStats(st catalog.Stats) FooterModel {
	m.stats = st
	return m
}

// WithUpdateCount returns a FooterModel with the update count set.
func (m FooterModel) WithUpdateCount(n int) FooterModel {
	m.updateCount = n
	return m
}

// WithSortLabel returns a FooterModel with the sort label set.
func (m FooterModel) WithSortLabel(l string) FooterModel {
	m.sortLabel = l
	return m
}

// WithFilterLabel returns a FooterModel with the type-filter label set.
func (m FooterModel) WithFilterLabel(l string) FooterModel {
	m.filterLabel = l
	return m
}

// WithSearch returns a FooterModel with the search query and mode set.
func (m FooterModel) WithSearch(query string, active bool) FooterModel {
	m.search = query
	m.searching = active
	return m
}

// WithScanStatus returns a FooterModel with the scan status line set.
func (m FooterModel) WithScanStatus(status string) FooterModel {
	m.scanStatus = status
	return m
}

// View renders the two-line footer.
func (m FooterModel) View() string {
	s := Styles()

	// === Line 1: counts + updates ===
	var parts []string
	parts = append(parts, s.FooterStats.Render(fmt.Sprintf("%d packages", m.stats.Total)))
	if m.stats.Apt > 0 {
		parts = append(parts, s.SourceApt.Render(fmt.Sprintf("apt %d", m.stats.Apt)))
	}
	if m.stats.Snap > 0 {
		parts = append(parts, s.SourceSnap.Render(fmt.Sprintf("snap %d", m.stats.Snap)))
	}
	if m.stats.Flatpak > 0 {
		parts = append(parts, s.SourceFlatpak.Render(fmt.Sprintf("flatpak %d", m.stats.Flatpak)))
	}
	if m.stats.AppImage > 0 {
		parts = append(parts, s.SourceAppImage.Render(fmt.Sprintf("appimage %d", m.stats.AppImage)))
	}
	if m.updateCount > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("⬆ %d updates", m.updateCount)))
	}
	line1 := strings.Join(parts, s.Muted.Render("  "))

	// === Line 2: search / keys + sort/filter + scan status ===
	var line2Parts []string
	if m.searching || m.search != "" {
		q := "/" + m.search
		if m.searching {
			q += "█"
		}
		line2Parts = append(line2Parts, s.FooterSearch.Render(q))
	} else {
		line2Parts = append(line2Parts,
			s.FooterKeys.Render("?")+s.Muted.Render(" help"),
			s.FooterKeys.Render("d")+s.Muted.Render(" delete"),
			s.FooterKeys.Render("u")+s.Muted.Render(" update"),
			s.FooterKeys.Render("c")+s.Muted.Render(" check"),
			s.FooterKeys.Render("q")+s.Muted.Render(" quit"))
	}
	if m.sortLabel != "" {
		line2Parts = append(line2Parts, s.Secondary.Render("sort: "+m.sortLabel))
	}
	if m.filterLabel != "" {
		line2Parts = append(line2Parts, s.Secondary.Render("show: "+m.filterLabel))
	}
	if m.scanStatus != "" {
		line2Parts = append(line2Parts, s.Info.Render(m.scanStatus))
	}
	line2 := strings.Join(line2Parts, "  ")

	// Truncate if needed
	if m.width > 0 {
		if width.VisibleWidth(line1) > m.width {
			line1 = width.TruncateToWidth(line1, m.width)
		}
		if width.VisibleWidth(line2) > m.width {
			line2 = width.TruncateToWidth(line2, m.width)
		}
	}

	return line1 + "\n" + line2
}
