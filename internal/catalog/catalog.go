// ABOUTME: Catalog owns the unified package list plus its filtered projection
// ABOUTME: Projection is recomputed wholesale on every mutation; cursor stays clamped

package catalog

import (
	"sort"
	"strings"
)

// Stats holds per-source package counts.
type Stats struct {
	Total    int
	Apt      int
	Snap     int
	Flatpak  int
	AppImage int
}

// Catalog is the in-memory unified list of packages and its derived view.
// It is owned by the TUI controller and must only be touched from its
// update loop; scan results cross in via messages, never shared references.
type Catalog struct {
	packages []Package

	// filtered holds indices into packages that pass the current predicate,
	// in the underlying order. Rebuilt from scratch on every change.
	filtered []int
	selected int

	search     string
	sortOrder  SortOrder
	typeFilter TypeFilter
	sourceTab  SourceTab
}

// NewCatalog creates an empty catalog with default sort and filters.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Packages returns the full underlying package slice.
func (c *Catalog) Packages() []Package { return c.packages }

// Filtered returns the current projection as indices into Packages().
func (c *Catalog) Filtered() []int { return c.filtered }

// Len returns the number of packages in the catalog.
func (c *Catalog) Len() int { return len(c.packages) }

// FilteredLen returns the number of packages passing the current predicate.
func (c *Catalog) FilteredLen() int { return len(c.filtered) }

// Selected returns the cursor position within the filtered projection.
func (c *Catalog) Selected() int { return c.selected }

// Search returns the active search query.
func (c *Catalog) Search() string { return c.search }

// Sort returns the active sort order.
func (c *Catalog) Sort() SortOrder { return c.sortOrder }

// TypeFilter returns the active app-type filter.
func (c *Catalog) TypeFilter() TypeFilter { return c.typeFilter }

// SourceTab returns the active source tab.
func (c *Catalog) SourceTab() SourceTab { return c.sourceTab }

// SetPackages replaces the whole package list, as after a full rescan.
func (c *Catalog) SetPackages(pkgs []Package) {
	c.packages = pkgs
	c.sortPackages()
	c.applyFilters()
}

// AddPackages appends a streamed batch and re-sorts, as during a
// progressive scan.
func (c *Catalog) AddPackages(pkgs []Package) {
	c.packages = append(c.packages, pkgs...)
	c.sortPackages()
	c.applyFilters()
}

// RemoveAt removes the package at the given underlying index, as after a
// successful uninstall.
func (c *Catalog) RemoveAt(idx int) {
	if idx < 0 || idx >= len(c.packages) {
		return
	}
	c.packages = append(c.packages[:idx], c.packages[idx+1:]...)
	c.applyFilters()
}

// Remove deletes the first package matching name and source. Reports whether
// anything was removed.
func (c *Catalog) Remove(name string, source Source) bool {
	for i, p := range c.packages {
		if p.Name == name && p.Source == source {
			c.RemoveAt(i)
			return true
		}
	}
	return false
}

// SelectedPackage returns the package under the cursor, or false when the
// filtered view is empty.
func (c *Catalog) SelectedPackage() (Package, bool) {
	if c.selected >= len(c.filtered) {
		return Package{}, false
	}
	return c.packages[c.filtered[c.selected]], true
}

// SelectedIndex returns the underlying index of the package under the
// cursor, or -1 when the filtered view is empty.
func (c *Catalog) SelectedIndex() int {
	if c.selected >= len(c.filtered) {
		return -1
	}
	return c.filtered[c.selected]
}

// --- Predicate mutation. Every one of these rebuilds the projection. ---

// SetSearch replaces the search query.
func (c *Catalog) SetSearch(q string) {
	c.search = q
	c.applyFilters()
}

// SearchInput appends typed characters to the search query.
func (c *Catalog) SearchInput(s string) {
	c.search += s
	c.applyFilters()
}

// SearchBackspace removes the last rune from the search query.
func (c *Catalog) SearchBackspace() {
	if c.search == "" {
		return
	}
	r := []rune(c.search)
	c.search = string(r[:len(r)-1])
	c.applyFilters()
}

// ClearSearch resets the search query.
func (c *Catalog) ClearSearch() {
	c.search = ""
	c.applyFilters()
}

// NextTab advances the source tab.
func (c *Catalog) NextTab() {
	c.sourceTab = c.sourceTab.Next()
	c.applyFilters()
}

// PrevTab retreats the source tab.
func (c *Catalog) PrevTab() {
	c.sourceTab = c.sourceTab.Prev()
	c.applyFilters()
}

// ToggleSort cycles the sort order and re-sorts the underlying list.
func (c *Catalog) ToggleSort() {
	c.sortOrder = c.sortOrder.Next()
	c.sortPackages()
	c.applyFilters()
}

// ToggleTypeFilter cycles the app-type filter.
func (c *Catalog) ToggleTypeFilter() {
	c.typeFilter = c.typeFilter.Next()
	c.applyFilters()
}

// --- Cursor movement. All keep the cursor inside the projection. ---

// SelectPrev moves the cursor up one row.
func (c *Catalog) SelectPrev() {
	if c.selected > 0 {
		c.selected--
	}
}

// SelectNext moves the cursor down one row.
func (c *Catalog) SelectNext() {
	if c.selected+1 < len(c.filtered) {
		c.selected++
	}
}

// SelectFirst moves the cursor to the top.
func (c *Catalog) SelectFirst() { c.selected = 0 }

// SelectLast moves the cursor to the bottom.
func (c *Catalog) SelectLast() {
	c.selected = max(0, len(c.filtered)-1)
}

// PageUp moves the cursor up by page rows.
func (c *Catalog) PageUp(page int) {
	c.selected = max(0, c.selected-page)
}

// PageDown moves the cursor down by page rows.
func (c *Catalog) PageDown(page int) {
	c.selected = min(c.selected+page, max(0, len(c.filtered)-1))
}

// --- Update bookkeeping ---

// ApplyUpdates visits every package exactly once: names present in the map
// get HasUpdate=true with the new version, all others get HasUpdate=false.
// After one pass no package remains in the unknown state.
func (c *Catalog) ApplyUpdates(updates map[string]string) {
	for i := range c.packages {
		if v, ok := updates[c.packages[i].Name]; ok {
			t := true
			c.packages[i].HasUpdate = &t
			c.packages[i].UpdateVersion = v
		} else {
			f := false
			c.packages[i].HasUpdate = &f
			c.packages[i].UpdateVersion = ""
		}
	}
	c.applyFilters()
}

// UpdateCount returns how many packages have a known-available update.
func (c *Catalog) UpdateCount() int {
	n := 0
	for _, p := range c.packages {
		if p.UpdateAvailable() {
			n++
		}
	}
	return n
}

// UpdatableIndices returns underlying indices of packages with an available
// update, optionally restricted to one source tab.
func (c *Catalog) UpdatableIndices(tab SourceTab) []int {
	var out []int
	for i, p := range c.packages {
		if p.UpdateAvailable() && tab.Matches(p.Source) {
			out = append(out, i)
		}
	}
	return out
}

// SetSelected flips the batch-selection mark on one package.
func (c *Catalog) SetSelected(idx int, sel bool) {
	if idx >= 0 && idx < len(c.packages) {
		c.packages[idx].Selected = sel
	}
}

// ClearSelections removes all batch-selection marks.
func (c *Catalog) ClearSelections() {
	for i := range c.packages {
		c.packages[i].Selected = false
	}
}

// Stats counts packages per source. Deb-file installs count as apt.
func (c *Catalog) Stats() Stats {
	s := Stats{Total: len(c.packages)}
	for _, p := range c.packages {
		switch p.Source {
		case SourceApt, SourceDebFile:
			s.Apt++
		case SourceSnap:
			s.Snap++
		case SourceFlatpak:
			s.Flatpak++
		case SourceAppImage:
			s.AppImage++
		}
	}
	return s
}

// --- Internals ---

func (c *Catalog) sortPackages() {
	lower := func(s string) string { return strings.ToLower(s) }
	switch c.sortOrder {
	case SortSizeDesc:
		sort.SliceStable(c.packages, func(i, j int) bool {
			return c.packages[i].SizeBytes > c.packages[j].SizeBytes
		})
	case SortSizeAsc:
		sort.SliceStable(c.packages, func(i, j int) bool {
			return c.packages[i].SizeBytes < c.packages[j].SizeBytes
		})
	case SortNameAsc:
		sort.SliceStable(c.packages, func(i, j int) bool {
			return lower(c.packages[i].Name) < lower(c.packages[j].Name)
		})
	case SortNameDesc:
		sort.SliceStable(c.packages, func(i, j int) bool {
			return lower(c.packages[i].Name) > lower(c.packages[j].Name)
		})
	case SortSourceAsc:
		sort.SliceStable(c.packages, func(i, j int) bool {
			if c.packages[i].Source != c.packages[j].Source {
				return c.packages[i].Source < c.packages[j].Source
			}
			return lower(c.packages[i].Name) < lower(c.packages[j].Name)
		})
	}
}

// applyFilters rebuilds the projection from scratch and clamps the cursor.
func (c *Catalog) applyFilters() {
	c.filtered = c.filtered[:0]
	for i, p := range c.packages {
		if !c.sourceTab.Matches(p.Source) {
			continue
		}
		if c.search != "" && !p.MatchesSearch(c.search) {
			continue
		}
		if !c.typeFilter.Matches(p.AppType) {
			continue
		}
		c.filtered = append(c.filtered, i)
	}
	if c.selected >= len(c.filtered) {
		c.selected = max(0, len(c.filtered)-1)
	}
}
