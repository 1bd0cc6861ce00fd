// ABOUTME: Tests for the confirm and cancel-confirm dialog rendering

package tui

import (
	"strings"
	"testing"

	"github.com/mauromedda/pkgscope/internal/catalog"
)

func TestConfirmModel_UninstallView(t *testing.T) {
	out := ConfirmModel{
		Action:  ActionUninstall,
		Package: catalog.Package{Name: "vim", Source: catalog.SourceApt, Version: "9.0"},
	}.View()

	for _, want := range []string{"Uninstall vim?", "apt", "9.0", "[y]es", "[n]o"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestConfirmModel_UpdateShowsVersionArrow(t *testing.T) {
	out := ConfirmModel{
		Action: ActionUpdate,
		Package: withUpdate(catalog.Package{
			Name: "firefox", Source: catalog.SourceApt, Version: "1.0",
		}, "2.0"),
	}.View()

	if !strings.Contains(out, "Update firefox?") {
		t.Error("View() missing question")
	}
	if !strings.Contains(out, "1.0 → 2.0") {
		t.Errorf("View() missing version transition: %q", out)
	}
}

func TestCancelConfirmModel_View(t *testing.T) {
	out := CancelConfirmModel{Remaining: 3}.View()
	for _, want := range []string{"Cancel remaining updates?", "3 packages", "finish first"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
