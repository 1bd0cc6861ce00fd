// ABOUTME: Concurrent fan-out/fan-in over the scanner set
// ABOUTME: Batch ScanAll plus streaming ScanAllStreaming with ordered per-source events

package scanner

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/pkgscope/internal/catalog"
	"github.com/mauromedda/pkgscope/internal/log"
)

// Capacity of the streaming event channel. Large enough that scanners never
// block on a consumer that is busy rendering.
const streamBuffer = 100

// ScanEventKind discriminates streaming scan events.
type ScanEventKind int

const (
	// ScanStarted: a source's scanner began running.
	ScanStarted ScanEventKind = iota
	// ScanPackages: a batch of packages from one source.
	ScanPackages
	// ScanCompleted: a source's scanner finished, successfully or not.
	ScanCompleted
	// ScanDone: every scanner has completed. Always the final event.
	ScanDone
)

// ScanMessage is one streaming scan event. For a given source, Started
// precedes any Packages batches, which precede Completed. Done follows every
// source's Completed. No ordering holds between different sources.
type ScanMessage struct {
	Kind     ScanEventKind
	Source   catalog.Source
	Packages []catalog.Package
}

// Orchestrator runs a scanner set concurrently and merges the results.
type Orchestrator struct {
	scanners []Scanner
}

// NewOrchestrator creates an orchestrator over the given scanners.
func NewOrchestrator(scanners []Scanner) *Orchestrator {
	return &Orchestrator{scanners: scanners}
}

// Scanners returns the underlying scanner set.
func (o *Orchestrator) Scanners() []Scanner { return o.scanners }

// ScanAll scans every available source concurrently and returns the merged
// package list. A single source failing, or being absent, contributes an
// empty result and never aborts the others.
func (o *Orchestrator) ScanAll(ctx context.Context) []catalog.Package {
	results := make([][]catalog.Package, len(o.scanners))

	g, ctx := errgroup.WithContext(ctx)
	for i, s := range o.scanners {
		g.Go(func() error {
			if !s.Available() {
				return nil
			}
			pkgs, err := s.Scan(ctx)
			if err != nil {
				log.Debug("scan %s: %v", s.Source(), err)
				return nil // isolation: swallow per-source failures
			}
			results[i] = pkgs
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	var all []catalog.Package
	for _, r := range results {
		all = append(all, r...)
	}
	return all
}

// ScanAllStreaming scans every source concurrently, emitting events on the
// returned channel as they happen. The channel is closed after the final
// Done event. There is no per-scanner timeout: a hung underlying tool stalls
// only the Done event, never the events of other sources.
func (o *Orchestrator) ScanAllStreaming(ctx context.Context) <-chan ScanMessage {
	ch := make(chan ScanMessage, streamBuffer)

	go func() {
		var wg sync.WaitGroup
		for _, s := range o.scanners {
			wg.Add(1)
			go func() {
				defer wg.Done()
				source := s.Source()
				ch <- ScanMessage{Kind: ScanStarted, Source: source}

				if s.Available() {
					pkgs, err := s.Scan(ctx)
					if err != nil {
						log.Debug("scan %s: %v", source, err)
					} else if len(pkgs) > 0 {
						ch <- ScanMessage{Kind: ScanPackages, Source: source, Packages: pkgs}
					}
				}

				ch <- ScanMessage{Kind: ScanCompleted, Source: source}
			}()
		}
		wg.Wait()
		ch <- ScanMessage{Kind: ScanDone}
		close(ch)
	}()

	return ch
}
