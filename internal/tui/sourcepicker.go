// ABOUTME: SourcePickerModel: choose which source's pending updates to batch
// ABOUTME: AppImage is absent; those packages have no update channel

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pkgscope/internal/catalog"
)

// SourcePickerModel selects a source tab for a batch update.
type SourcePickerModel struct {
	options []catalog.SourceTab
	counts  map[catalog.SourceTab]int
	cursor  int
}

// NewSourcePickerModel builds the picker with per-tab update counts.
func NewSourcePickerModel(c *catalog.Catalog) SourcePickerModel {
	options := []catalog.SourceTab{
		catalog.TabAll, catalog.TabApt, catalog.TabSnap, catalog.TabFlatpak,
	}
	counts := make(map[catalog.SourceTab]int, len(options))
	for _, t := range options {
		counts[t] = len(c.UpdatableIndices(t))
	}
	return SourcePickerModel{options: options, counts: counts}
}

// Init returns nil; no commands needed for a leaf model.
func (m SourcePickerModel) Init() tea.Cmd { return nil }

// Chosen returns the tab under the cursor.
func (m SourcePickerModel) Chosen() catalog.SourceTab { return m.options[m.cursor] }

// Update handles navigation.
func (m SourcePickerModel) Update(msg tea.Msg) (SourcePickerModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

// View renders the picker list.
func (m SourcePickerModel) View() string {
	s := Styles()

	var b strings.Builder
	b.WriteString(s.Title.Render("Update by source") + "\n\n")

	for i, t := range m.options {
		line := fmt.Sprintf("%-10s %s", t.Label(),
			s.Secondary.Render(fmt.Sprintf("%d pending", m.counts[t])))
		if i == m.cursor {
			line = s.Selection.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + s.Muted.Render("enter start  esc back"))
	return b.String()
}
