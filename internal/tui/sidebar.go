// ABOUTME: SidebarModel is a leaf model rendering the action menu
// ABOUTME: Delete, Update, Install, Clean; focus drawn with a highlighted cursor

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const sidebarWidth = 14

// SidebarModel renders the vertical action menu on the left edge.
type SidebarModel struct {
	section SidebarSection
	focused bool
	height  int
}

// NewSidebarModel creates a sidebar with Delete selected.
func NewSidebarModel() SidebarModel {
	return SidebarModel{}
}

// Init returns nil; no commands needed for a leaf model.
func (m SidebarModel) Init() tea.Cmd { return nil }

// Update handles window sizing.
func (m SidebarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.height = size.Height
	}
	return m, nil
}

// Section returns the highlighted section.
func (m SidebarModel) Section() SidebarSection { return m.section }

// Focused reports whether the sidebar owns navigation keys.
func (m SidebarModel) Focused() bool { return m.focused }

// SetFocused returns a SidebarModel with focus set.
func (m SidebarModel) SetFocused(f bool) SidebarModel {
	m.focused = f
	return m
}

// SelectNext moves the cursor down, wrapping.
func (m SidebarModel) SelectNext() SidebarModel {
	m.section = m.section.Next()
	return m
}

// SelectPrev moves the cursor up, wrapping.
func (m SidebarModel) SelectPrev() SidebarModel {
	m.section = m.section.Prev()
	return m
}

// View renders the sidebar column.
func (m SidebarModel) View() string {
	s := Styles()

	var b strings.Builder
	b.WriteString(s.Title.Render(" pkgscope"))
	b.WriteString("\n\n")

	for sec := SectionDelete; sec <= SectionClean; sec++ {
		cursor := "  "
		line := sec.Label()
		if sec == m.section {
			cursor = "> "
			if m.focused {
				line = s.Selection.Render(line)
			} else {
				line = s.Accent.Render(line)
			}
		} else {
			line = s.Secondary.Render(line)
		}
		b.WriteString(" " + cursor + line + "\n\n")
	}

	if m.focused {
		b.WriteString("\n")
		b.WriteString(s.Muted.Render(" ↑/↓ nav") + "\n")
		b.WriteString(s.Muted.Render(" enter run"))
	}

	return b.String()
}
