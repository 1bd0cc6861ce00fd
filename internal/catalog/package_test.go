// ABOUTME: Tests for the Package model: search matching, enum cycles, sizes
// ABOUTME: Table-driven coverage of tab/filter predicates

package catalog

import "testing"

func TestPackage_MatchesSearch(t *testing.T) {
	t.Parallel()

	p := Package{Name: "Firefox", Description: "Web browser from Mozilla"}

	tests := []struct {
		query string
		want  bool
	}{
		{"fire", true},
		{"FOX", true},
		{"browser", true},
		{"mozilla", true},
		{"chrome", false},
		{"", true},
	}

	for _, tt := range tests {
		if got := p.MatchesSearch(tt.query); got != tt.want {
			t.Errorf("MatchesSearch(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestSourceTab_Matches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tab    SourceTab
		source Source
		want   bool
	}{
		{TabAll, SourceApt, true},
		{TabAll, SourceAppImage, true},
		{TabApt, SourceApt, true},
		{TabApt, SourceDebFile, true},
		{TabApt, SourceSnap, false},
		{TabSnap, SourceSnap, true},
		{TabFlatpak, SourceFlatpak, true},
		{TabFlatpak, SourceApt, false},
		{TabAppImage, SourceAppImage, true},
		{TabAppImage, SourceDebFile, false},
	}

	for _, tt := range tests {
		if got := tt.tab.Matches(tt.source); got != tt.want {
			t.Errorf("%s.Matches(%s) = %v, want %v", tt.tab.Label(), tt.source, got, tt.want)
		}
	}
}

func TestSourceTab_Cycle(t *testing.T) {
	t.Parallel()

	tab := TabAll
	for range 5 {
		tab = tab.Next()
	}
	if tab != TabAll {
		t.Errorf("five Next() calls should wrap back to TabAll, got %s", tab.Label())
	}

	if TabAll.Prev() != TabAppImage {
		t.Error("Prev from TabAll should wrap to TabAppImage")
	}
}

func TestTypeFilter_Matches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filter TypeFilter
		at     AppType
		want   bool
	}{
		{FilterAll, AppGUI, true},
		{FilterAll, AppUnknown, true},
		{FilterGUIOnly, AppGUI, true},
		{FilterGUIOnly, AppCLI, false},
		{FilterGUIOnly, AppUnknown, false},
		{FilterCLIOnly, AppCLI, true},
		{FilterCLIOnly, AppGUI, false},
	}

	for _, tt := range tests {
		if got := tt.filter.Matches(tt.at); got != tt.want {
			t.Errorf("%s.Matches(%s) = %v, want %v", tt.filter.Label(), tt.at, got, tt.want)
		}
	}
}

func TestSortOrder_CycleCoversAll(t *testing.T) {
	t.Parallel()

	seen := map[SortOrder]bool{}
	o := SortSizeDesc
	for range 5 {
		seen[o] = true
		o = o.Next()
	}
	if o != SortSizeDesc {
		t.Errorf("five Next() calls should wrap back to SortSizeDesc, got %v", o)
	}
	if len(seen) != 5 {
		t.Errorf("cycle visited %d orders, want 5", len(seen))
	}
}

func TestHumanSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bytes uint64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1048576, "1.0 MiB"},
		{5 * 1024 * 1024 * 1024, "5.0 GiB"},
	}

	for _, tt := range tests {
		if got := HumanSize(tt.bytes); got != tt.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestPackage_UpdateAvailable(t *testing.T) {
	t.Parallel()

	p := New("vim", SourceApt)
	if p.UpdateAvailable() {
		t.Error("unknown state should report no update")
	}

	f := false
	p.HasUpdate = &f
	if p.UpdateAvailable() {
		t.Error("HasUpdate=false should report no update")
	}

	tr := true
	p.HasUpdate = &tr
	if !p.UpdateAvailable() {
		t.Error("HasUpdate=true should report an update")
	}
}
