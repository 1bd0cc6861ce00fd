// ABOUTME: Batch update worker: one goroutine, serialized mutations
// ABOUTME: Cooperative cancel flag checked between items only, never mid-item

package tui

import (
	"context"
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pkgscope/internal/catalog"
	"github.com/mauromedda/pkgscope/internal/scanner"
)

// batchRunner executes a fixed work list sequentially on one goroutine.
// Mutations are deliberately serialized so only one privilege prompt can be
// open at a time.
type batchRunner struct {
	cancel  atomic.Bool
	running atomic.Bool
}

// Start launches the worker over a snapshot of work. The list is never
// re-evaluated mid-run; a batch completes against the state it was scheduled
// with. Every finished item produces a BatchProgressMsg; the worker always
// ends with exactly one BatchDoneMsg.
func (b *batchRunner) Start(send func(tea.Msg), scanners []scanner.Scanner, work []catalog.Package) {
	b.cancel.Store(false)
	b.running.Store(true)

	go func() {
		defer b.running.Store(false)
		total := len(work)
		for i, pkg := range work {
			// Cancellation is honored between items only. An item in
			// flight always completes (or fails) first.
			if b.cancel.Load() {
				send(BatchDoneMsg{Cancelled: true})
				return
			}

			var err error
			if s := scanner.ForSource(scanners, pkg.Source); s != nil {
				err = s.Update(context.Background(), pkg)
			} else {
				err = fmt.Errorf("no scanner for source %s", pkg.Source)
			}
			send(BatchProgressMsg{Index: i + 1, Total: total, Package: pkg.Name, Err: err})
		}
		send(BatchDoneMsg{})
	}()
}

// Cancel requests a stop. Takes effect before the next item is scheduled.
func (b *batchRunner) Cancel() {
	b.cancel.Store(true)
}

// Running reports whether the worker goroutine is still alive.
func (b *batchRunner) Running() bool {
	return b.running.Load()
}
