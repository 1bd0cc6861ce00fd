// ABOUTME: DetailsModel shows one package full-screen with line scrolling
// ABOUTME: Description is wrapped ANSI-aware to the terminal width

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pkgscope/internal/catalog"
	"github.com/mauromedda/pkgscope/pkg/tui/width"
)

// DetailsModel renders the details pane for one package.
type DetailsModel struct {
	pkg           catalog.Package
	scroll        int
	width, height int
}

// NewDetailsModel creates a details pane for pkg with scroll reset.
func NewDetailsModel(pkg catalog.Package) DetailsModel {
	return DetailsModel{pkg: pkg}
}

// Init returns nil; no commands needed for a leaf model.
func (m DetailsModel) Init() tea.Cmd { return nil }

// Update handles sizing and scroll keys.
func (m DetailsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.scroll > 0 {
				m.scroll--
			}
		case "down", "j":
			m.scroll++
		}
	}
	return m, nil
}

// Package returns the displayed package.
func (m DetailsModel) Package() catalog.Package { return m.pkg }

// View renders the details pane.
func (m DetailsModel) View() string {
	s := Styles()
	p := m.pkg

	var b strings.Builder
	b.WriteString(s.Title.Render(p.Name) + "\n")
	b.WriteString(s.Border.Render(strings.Repeat("─", max(20, len(p.Name)))) + "\n\n")

	row := func(label, value string) {
		b.WriteString(s.Secondary.Render(fmt.Sprintf("%-12s", label)) + value + "\n")
	}

	row("Source", s.Source(p.Source).Render(p.Source.String()))
	row("Version", p.Version)
	if p.UpdateVersion != "" {
		row("Update", s.Warning.Render(p.UpdateVersion))
	}
	row("Size", catalog.HumanSize(p.SizeBytes))
	switch p.AppType {
	case catalog.AppGUI:
		row("Type", "GUI application")
	case catalog.AppCLI:
		row("Type", "command line")
	}
	if p.InstallPath != "" {
		row("Path", s.Muted.Render(p.InstallPath))
	}
	if p.HasUpdate != nil {
		if *p.HasUpdate {
			row("Status", s.Warning.Render("update available"))
		} else {
			row("Status", s.Success.Render("up to date"))
		}
	}

	if p.Description != "" {
		b.WriteString("\n" + s.Secondary.Render("Description") + "\n")
		wrapWidth := m.width - 4
		if wrapWidth < 20 {
			wrapWidth = 76
		}
		for _, line := range width.WrapTextWithAnsi(p.Description, wrapWidth) {
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n" + s.Muted.Render("↑/↓ scroll  d delete  u update  esc back"))

	// Apply vertical scroll.
	lines := strings.Split(b.String(), "\n")
	if m.scroll >= len(lines) {
		m.scroll = len(lines) - 1
	}
	return strings.Join(lines[m.scroll:], "\n")
}
