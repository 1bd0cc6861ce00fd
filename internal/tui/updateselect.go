// ABOUTME: UpdateSelectModel: multi-select list of updatable packages
// ABOUTME: Space toggles, a/n select all/none, / filters fuzzily

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pkgscope/internal/catalog"
	"github.com/mauromedda/pkgscope/pkg/tui/fuzzy"
	"github.com/mauromedda/pkgscope/pkg/tui/width"
)

// updateEntry is one candidate row in the update-select list.
type updateEntry struct {
	pkg      catalog.Package
	selected bool
}

// UpdateSelectModel lets the user pick which pending updates to run.
type UpdateSelectModel struct {
	entries   []updateEntry
	visible   []int // indices into entries after fuzzy filtering
	cursor    int
	filter    string
	filtering bool
	height    int
}

// NewUpdateSelectModel builds the list from packages with a pending update.
// All entries start selected.
func NewUpdateSelectModel(pkgs []catalog.Package) UpdateSelectModel {
	m := UpdateSelectModel{height: 20}
	for _, p := range pkgs {
		if p.UpdateAvailable() {
			m.entries = append(m.entries, updateEntry{pkg: p, selected: true})
		}
	}
	m.applyFilter()
	return m
}

// Init returns nil; no commands needed for a leaf model.
func (m UpdateSelectModel) Init() tea.Cmd { return nil }

// Empty reports whether there is nothing to update.
func (m UpdateSelectModel) Empty() bool { return len(m.entries) == 0 }

// Selected returns the chosen packages in list order.
func (m UpdateSelectModel) Selected() []catalog.Package {
	var out []catalog.Package
	for _, e := range m.entries {
		if e.selected {
			out = append(out, e.pkg)
		}
	}
	return out
}

// Update handles navigation, toggling and filter editing.
func (m UpdateSelectModel) Update(msg tea.Msg) (UpdateSelectModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "esc":
				m.filtering = false
				m.filter = ""
				m.applyFilter()
			case "enter":
				m.filtering = false
			case "backspace":
				if m.filter != "" {
					m.filter = m.filter[:len(m.filter)-1]
					m.applyFilter()
				}
			default:
				if msg.Type == tea.KeyRunes {
					m.filter += string(msg.Runes)
					m.applyFilter()
				}
			}
			return m, nil
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
		case " ":
			if m.cursor < len(m.visible) {
				i := m.visible[m.cursor]
				m.entries[i].selected = !m.entries[i].selected
			}
		case "a":
			for i := range m.entries {
				m.entries[i].selected = true
			}
		case "n":
			for i := range m.entries {
				m.entries[i].selected = false
			}
		case "/":
			m.filtering = true
		}
	}
	return m, nil
}

// applyFilter rebuilds the visible projection and clamps the cursor.
func (m *UpdateSelectModel) applyFilter() {
	if m.filter == "" {
		m.visible = make([]int, len(m.entries))
		for i := range m.entries {
			m.visible[i] = i
		}
	} else {
		names := make([]string, len(m.entries))
		for i, e := range m.entries {
			names[i] = e.pkg.Name
		}
		matches := fuzzy.Find(m.filter, names)
		m.visible = make([]int, len(matches))
		for i, match := range matches {
			m.visible[i] = match.Index
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}
}

// View renders the selection list.
func (m UpdateSelectModel) View() string {
	s := Styles()

	var b strings.Builder
	selected := len(m.Selected())
	b.WriteString(s.Title.Render(fmt.Sprintf("Select updates  (%d/%d)", selected, len(m.entries))) + "\n")
	if m.filtering || m.filter != "" {
		q := "/" + m.filter
		if m.filtering {
			q += "█"
		}
		b.WriteString(s.FooterSearch.Render(q) + "\n")
	}
	b.WriteString("\n")

	rows := m.height - 6
	if rows < 3 {
		rows = 3
	}
	offset := clampOffset(m.cursor, 0, rows)
	end := min(offset+rows, len(m.visible))

	for i := offset; i < end; i++ {
		e := m.entries[m.visible[i]]

		check := "[ ]"
		if e.selected {
			check = s.Success.Render("[x]")
		}
		line := fmt.Sprintf("%s %s  %s → %s",
			check,
			width.TruncateToWidth(e.pkg.Name, 32),
			e.pkg.Version,
			e.pkg.UpdateVersion)
		if i == m.cursor {
			line = s.Selection.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	if len(m.visible) == 0 {
		b.WriteString(s.Muted.Render("  no matches") + "\n")
	}

	b.WriteString("\n" + s.Muted.Render("space toggle  a all  n none  / filter  enter run  esc back"))
	return b.String()
}
