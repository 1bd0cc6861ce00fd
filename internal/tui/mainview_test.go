// ABOUTME: Tests for the main table rendering: columns, markers, overflow,
// ABOUTME: and viewport offset clamping

package tui

import (
	"strings"
	"testing"

	"github.com/mauromedda/pkgscope/internal/catalog"
)

func tableCatalog(pkgs ...catalog.Package) *catalog.Catalog {
	c := catalog.NewCatalog()
	c.SetPackages(pkgs)
	return c
}

func TestRenderTable_Columns(t *testing.T) {
	c := tableCatalog(catalog.Package{
		Name:      "firefox",
		Version:   "128.0",
		SizeBytes: 2048,
		Source:    catalog.SourceApt,
	})

	out := renderTable(c, 80, 10, 0)
	for _, want := range []string{"NAME", "VERSION", "SIZE", "SOURCE", "firefox", "128.0", "2.0 KiB", "apt"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderTable missing %q", want)
		}
	}
}

func TestRenderTable_EmptyFilter(t *testing.T) {
	c := tableCatalog(catalog.Package{Name: "vim", Source: catalog.SourceApt})
	c.SetSearch("zzz")

	out := renderTable(c, 80, 10, 0)
	if !strings.Contains(out, "no packages match") {
		t.Errorf("renderTable = %q; want empty notice", out)
	}
}

func TestRenderTable_UpdateMarker(t *testing.T) {
	c := tableCatalog(
		withUpdate(catalog.Package{Name: "vim", Version: "8", Source: catalog.SourceApt}, "9"),
		catalog.Package{Name: "git", Version: "2", Source: catalog.SourceApt},
	)

	out := renderTable(c, 80, 10, 0)
	if !strings.Contains(out, "⬆") {
		t.Error("renderTable missing update marker for a pending update")
	}
}

func TestRenderTable_OverflowLine(t *testing.T) {
	pkgs := make([]catalog.Package, 10)
	for i := range pkgs {
		pkgs[i] = catalog.Package{Name: strings.Repeat("p", i+1), Source: catalog.SourceApt}
	}
	c := tableCatalog(pkgs...)

	out := renderTable(c, 80, 4, 0) // header + 3 rows
	if !strings.Contains(out, "7 more") {
		t.Errorf("renderTable = %q; want overflow count", out)
	}
}

func TestClampOffset(t *testing.T) {
	tests := []struct {
		name                   string
		selected, offset, rows int
		want                   int
	}{
		{"cursor inside window", 5, 3, 10, 3},
		{"cursor above window", 2, 5, 10, 2},
		{"cursor below window", 15, 0, 10, 6},
		{"degenerate viewport", 3, 0, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampOffset(tt.selected, tt.offset, tt.rows); got != tt.want {
				t.Errorf("clampOffset(%d, %d, %d) = %d; want %d",
					tt.selected, tt.offset, tt.rows, got, tt.want)
			}
		})
	}
}
