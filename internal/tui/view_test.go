// ABOUTME: Tests for the state machine enums: names, labels, sidebar cycling

package tui

import "testing"

func TestViewString(t *testing.T) {
	views := []View{
		ViewMain, ViewDetails, ViewConfirm, ViewUpdateSelect, ViewUpdateBySource,
		ViewUpdateProgress, ViewUpdateSummary, ViewCancelConfirm, ViewLoading, ViewError,
	}
	seen := make(map[string]bool)
	for _, v := range views {
		name := v.String()
		if name == "" || name == "unknown" {
			t.Errorf("View(%d).String() = %q", int(v), name)
		}
		if seen[name] {
			t.Errorf("duplicate view name %q", name)
		}
		seen[name] = true
	}
	if View(99).String() != "unknown" {
		t.Error("out-of-range view should be unknown")
	}
}

func TestConfirmActionLabel(t *testing.T) {
	if ActionUninstall.Label() != "Uninstall" {
		t.Errorf("ActionUninstall.Label() = %q", ActionUninstall.Label())
	}
	if ActionUpdate.Label() != "Update" {
		t.Errorf("ActionUpdate.Label() = %q", ActionUpdate.Label())
	}
}

func TestSidebarSectionCycling(t *testing.T) {
	s := SectionDelete
	for i := 0; i < 4; i++ {
		s = s.Next()
	}
	if s != SectionDelete {
		t.Errorf("four Next() calls = %v; want wrap to SectionDelete", s)
	}

	if SectionDelete.Prev() != SectionClean {
		t.Errorf("SectionDelete.Prev() = %v; want SectionClean", SectionDelete.Prev())
	}
	for _, s := range []SidebarSection{SectionDelete, SectionUpdate, SectionInstall, SectionClean} {
		if s.Next().Prev() != s {
			t.Errorf("Next().Prev() != identity for %v", s)
		}
	}
}
