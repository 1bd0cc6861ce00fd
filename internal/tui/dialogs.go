// ABOUTME: Modal y/n dialogs: mutation confirm and batch cancel confirm
// ABOUTME: Pure render helpers; the key handling lives in app.go

package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/pkgscope/internal/catalog"
)

// ConfirmModel holds the pending single-package mutation.
type ConfirmModel struct {
	Action  ConfirmAction
	Package catalog.Package
}

// View renders the confirm dialog box.
func (m ConfirmModel) View() string {
	s := Styles()

	verb := m.Action.Label()
	question := fmt.Sprintf("%s %s?", verb, m.Package.Name)
	detail := fmt.Sprintf("%s · %s · %s",
		m.Package.Source, m.Package.Version, catalog.HumanSize(m.Package.SizeBytes))
	if m.Action == ActionUpdate && m.Package.UpdateVersion != "" {
		detail = fmt.Sprintf("%s → %s", m.Package.Version, m.Package.UpdateVersion)
	}

	body := s.Title.Render(question) + "\n" +
		s.Secondary.Render(detail) + "\n\n" +
		s.Success.Render("[y]es") + "  " + s.Error.Render("[n]o")

	return dialogBox(body)
}

// CancelConfirmModel asks before aborting a running batch.
type CancelConfirmModel struct {
	Remaining int
}

// View renders the cancel-confirm dialog box.
func (m CancelConfirmModel) View() string {
	s := Styles()

	body := s.Title.Render("Cancel remaining updates?") + "\n" +
		s.Secondary.Render(fmt.Sprintf("%d packages not yet updated", m.Remaining)) + "\n" +
		s.Muted.Render("The update in flight will finish first.") + "\n\n" +
		s.Success.Render("[y]es, stop") + "  " + s.Error.Render("[n]o, keep going")

	return dialogBox(body)
}

// dialogBox wraps dialog content in a rounded border.
func dialogBox(body string) string {
	s := Styles()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Border.GetForeground()).
		Padding(1, 3).
		Render(body)
}
