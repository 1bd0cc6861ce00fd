// ABOUTME: Bridge goroutine forwarding orchestrator scan events into the app
// ABOUTME: Translates scanner.ScanMessage to tea.Msg via Program.Send

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pkgscope/internal/scanner"
)

// sender is the subset of tea.Program the pump needs. Narrowed for tests.
type sender interface {
	Send(msg tea.Msg)
}

// pumpScanEvents drains the streaming scan channel into the program,
// stamping every message with the scan generation so the app can discard
// events from a scan that was abandoned by a rescan. Returns when the
// channel closes, which the orchestrator guarantees happens after the
// final Done event.
func pumpScanEvents(p sender, ch <-chan scanner.ScanMessage, gen int) {
	for msg := range ch {
		switch msg.Kind {
		case scanner.ScanStarted:
			p.Send(ScanStartedMsg{Gen: gen, Source: msg.Source})
		case scanner.ScanPackages:
			p.Send(ScanPackagesMsg{Gen: gen, Source: msg.Source, Packages: msg.Packages})
		case scanner.ScanCompleted:
			p.Send(ScanCompletedMsg{Gen: gen, Source: msg.Source})
		case scanner.ScanDone:
			p.Send(ScanDoneMsg{Gen: gen})
		}
	}
}
