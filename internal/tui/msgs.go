// ABOUTME: All custom tea.Msg types for the dashboard
// ABOUTME: Scan stream events, update checks, mutation results, batch progress, ticks

package tui

import (
	"time"

	"github.com/mauromedda/pkgscope/internal/catalog"
)

// --- Scan stream (pumped from the orchestrator channel via Program.Send) ---
//
// Every scan message carries the generation of the scan that produced it.
// A rescan abandons the previous scan's workers rather than waiting for
// them; their late messages arrive with the old generation and are dropped,
// so a reset catalog can never collect rows from two scans.

// ScanStartedMsg: a source's scanner began running.
type ScanStartedMsg struct {
	Gen    int
	Source catalog.Source
}

// ScanPackagesMsg carries a batch of packages from one source.
type ScanPackagesMsg struct {
	Gen      int
	Source   catalog.Source
	Packages []catalog.Package
}

// ScanCompletedMsg: a source's scanner finished, successfully or not.
type ScanCompletedMsg struct {
	Gen    int
	Source catalog.Source
}

// ScanDoneMsg: every scanner has completed.
type ScanDoneMsg struct{ Gen int }

// --- Update reconciliation ---

// UpdatesCheckedMsg carries the merged name→version update map.
type UpdatesCheckedMsg struct{ Updates map[string]string }

// --- Single mutations (tea.Exec callback) ---

// MutationDoneMsg carries the result of one uninstall or update.
type MutationDoneMsg struct {
	Action  ConfirmAction
	Package catalog.Package
	Err     error
}

// CleanDoneMsg carries the result of the package-cache clean action.
type CleanDoneMsg struct{ Err error }

// --- Batch updates (sent by the batch worker via Program.Send) ---

// BatchProgressMsg reports one finished work item. Index is 1-based.
type BatchProgressMsg struct {
	Index   int
	Total   int
	Package string
	Err     error
}

// BatchDoneMsg signals the batch worker has stopped scheduling work.
type BatchDoneMsg struct{ Cancelled bool }

// --- Time ---

// TickMsg drives toast expiry and the scan spinner.
type TickMsg struct{ Time time.Time }
