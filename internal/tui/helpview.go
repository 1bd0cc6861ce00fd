// ABOUTME: Markdown help overlay rendered with glamour
// ABOUTME: Cached per width; scrollable; toggled with ?

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# pkgscope

Dashboard for packages installed via APT, Snap, Flatpak and AppImage.

## Navigation

| Key | Action |
|-----|--------|
| ` + "`↑/↓ j/k`" + ` | move cursor |
| ` + "`g/G`" + ` | first / last |
| ` + "`pgup/pgdn`" + ` | page |
| ` + "`tab / shift+tab`" + ` | next / previous source tab |
| ` + "`←`" + ` | focus sidebar |
| ` + "`enter`" + ` | package details |

## Filtering

| Key | Action |
|-----|--------|
| ` + "`/`" + ` | live search (esc clears) |
| ` + "`s`" + ` | cycle sort order |
| ` + "`f`" + ` | cycle GUI/CLI filter |

## Actions

| Key | Action |
|-----|--------|
| ` + "`d`" + ` | uninstall selected package |
| ` + "`u`" + ` | update selected package |
| ` + "`c`" + ` | check for updates |
| ` + "`U`" + ` | pick and run batch updates |
| ` + "`r`" + ` | rescan all sources |
| ` + "`q`" + ` | quit |

Privileged operations run through ` + "`pkexec`" + ` and may prompt for
authentication.
`

// HelpModel renders the markdown help overlay.
type HelpModel struct {
	rendered string
	width    int
	scroll   int
}

// NewHelpModel creates an empty help overlay; rendering is lazy per width.
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init returns nil; no commands needed for a leaf model.
func (m HelpModel) Init() tea.Cmd { return nil }

// Update handles sizing and scroll keys.
func (m HelpModel) Update(msg tea.Msg) (HelpModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width != m.width {
			m.width = msg.Width
			m.rendered = ""
		}
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

// View renders the help text, re-rendering on width change.
func (m HelpModel) View() string {
	if m.rendered == "" {
		m.rendered = renderHelp(m.width)
	}
	lines := strings.Split(m.rendered, "\n")
	if m.scroll >= len(lines) {
		m.scroll = len(lines) - 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
	return strings.Join(lines[m.scroll:], "\n")
}

// renderHelp runs glamour over the help markdown, falling back to raw text.
func renderHelp(w int) string {
	if w <= 0 {
		w = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(min(w, 100)),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(out, "\n")
}
