// ABOUTME: Entry point for the Bubble Tea dashboard
// ABOUTME: Creates the tea.Program, injects program reference, starts the
// ABOUTME: initial scan pump, and blocks until exit

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard and blocks until the user exits. The deps struct
// provides all external dependencies (orchestrator, settings, version).
func Run(deps AppDeps) error {
	m := NewAppModel(deps)

	p := tea.NewProgram(m, tea.WithAltScreen())

	// Inject the program reference into the shared state. This is safe
	// because NewAppModel allocates sh as a pointer, and tea.NewProgram
	// copies the model value but shares the pointer.
	m.sh.program = p

	// Kick off the initial scan. Init cannot do this because it runs
	// before the program reference exists.
	go pumpScanEvents(p, deps.Orchestrator.ScanAllStreaming(m.sh.ctx), m.scanGen)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
