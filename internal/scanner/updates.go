// ABOUTME: Update reconciliation: concurrent per-source update checks
// ABOUTME: Merges name→version listings; last writer wins on cross-source clashes

package scanner

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/pkgscope/internal/catalog"
	"github.com/mauromedda/pkgscope/internal/log"
)

// CheckAllUpdates queries every source that has an update channel and merges
// the results into one name→version map. AppImage is excluded: there is no
// central place to ask. Per-source failures degrade to an empty contribution.
//
// Names are source-scoped in practice, so a same-name clash across sources
// is resolved by whichever listing lands last.
func (o *Orchestrator) CheckAllUpdates(ctx context.Context) map[string]string {
	updates := make(map[string]string)
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, s := range o.scanners {
		if s.Source() == catalog.SourceAppImage {
			continue
		}
		g.Go(func() error {
			if !s.Available() {
				return nil
			}
			infos, err := s.Updates(ctx)
			if err != nil {
				log.Debug("update check %s: %v", s.Source(), err)
				return nil
			}
			mu.Lock()
			for _, u := range infos {
				updates[u.Name] = u.NewVersion
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return updates
}
