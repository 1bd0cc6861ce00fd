// ABOUTME: Main view rendering: source tabs and the package table
// ABOUTME: Scrolls a viewport window around the cursor; columns are width-truncated

package tui

import (
	"fmt"
	"strings"

	"github.com/mauromedda/pkgscope/internal/catalog"
	"github.com/mauromedda/pkgscope/pkg/tui/width"
)

// renderTabs draws the source tab bar with the active tab highlighted.
func renderTabs(active catalog.SourceTab) string {
	s := Styles()

	tabs := []catalog.SourceTab{
		catalog.TabAll, catalog.TabApt, catalog.TabSnap, catalog.TabFlatpak, catalog.TabAppImage,
	}
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		label := " " + t.Label() + " "
		if t == active {
			parts = append(parts, s.Selection.Render(label))
		} else {
			parts = append(parts, s.Secondary.Render(label))
		}
	}
	return strings.Join(parts, s.Border.Render("│"))
}

// tableLayout holds the column widths for the package table.
type tableLayout struct {
	name, version, size, source int
}

func layoutFor(total int) tableLayout {
	// Fixed right-hand columns; name takes the rest.
	l := tableLayout{version: 16, size: 10, source: 9}
	l.name = total - l.version - l.size - l.source - 8 // marker, cursor, gaps
	if l.name < 12 {
		l.name = 12
	}
	return l
}

// padCell truncates s to w visible columns and pads it to exactly w.
func padCell(s string, w int) string {
	s = width.TruncateToWidth(s, w)
	if gap := w - width.VisibleWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

// renderTable draws the visible window of the filtered package list.
func renderTable(c *catalog.Catalog, w, h, offset int) string {
	s := Styles()
	l := layoutFor(w)

	var b strings.Builder
	header := "   " + padCell("NAME", l.name) + " " + padCell("VERSION", l.version) +
		" " + padCell("SIZE", l.size) + " " + padCell("SOURCE", l.source)
	b.WriteString(s.Bold.Render(width.TruncateToWidth(header, w)) + "\n")

	filtered := c.Filtered()
	if len(filtered) == 0 {
		b.WriteString("\n" + s.Muted.Render("  no packages match"))
		return b.String()
	}

	rows := h - 1
	if rows < 1 {
		rows = 1
	}
	end := offset + rows
	if end > len(filtered) {
		end = len(filtered)
	}

	pkgs := c.Packages()
	for i := offset; i < end; i++ {
		p := pkgs[filtered[i]]

		cells := padCell(p.Name, l.name) + " " + padCell(p.Version, l.version) +
			" " + padCell(p.SizeHuman(), l.size) + " "

		if i == c.Selected() {
			marker := " "
			if p.UpdateAvailable() {
				marker = "⬆"
			}
			row := "▸" + marker + " " + cells + padCell(p.Source.String(), l.source)
			b.WriteString(s.Selection.Render(width.TruncateToWidth(row, w)) + "\n")
			continue
		}

		marker := " "
		if p.UpdateAvailable() {
			marker = s.Warning.Render("⬆")
		}
		row := " " + marker + " " + cells + s.Source(p.Source).Render(padCell(p.Source.String(), l.source))
		b.WriteString(width.TruncateToWidth(row, w) + "\n")
	}

	if end < len(filtered) {
		b.WriteString(s.Muted.Render(fmt.Sprintf("  … %d more", len(filtered)-end)))
	}
	return b.String()
}

// clampOffset keeps the cursor row inside the viewport window.
func clampOffset(selected, offset, rows int) int {
	if rows < 1 {
		rows = 1
	}
	if selected < offset {
		return selected
	}
	if selected >= offset+rows {
		return selected - rows + 1
	}
	return offset
}
