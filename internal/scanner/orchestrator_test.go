// ABOUTME: Orchestrator tests with fake scanners: merging, isolation, event order
// ABOUTME: Covers reconciliation merge semantics and the AppImage exclusion

package scanner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mauromedda/pkgscope/internal/catalog"
)

// fakeScanner is a scriptable Scanner for orchestrator tests.
type fakeScanner struct {
	source    catalog.Source
	available bool
	packages  []catalog.Package
	scanErr   error
	updates   []UpdateInfo
	updateErr error
	delay     time.Duration

	uninstalled []string
	updated     []string
	mutErr      error
}

func (f *fakeScanner) Source() catalog.Source { return f.source }
func (f *fakeScanner) Available() bool        { return f.available }

func (f *fakeScanner) Scan(ctx context.Context) ([]catalog.Package, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.packages, f.scanErr
}

func (f *fakeScanner) Updates(ctx context.Context) ([]UpdateInfo, error) {
	return f.updates, f.updateErr
}

func (f *fakeScanner) Uninstall(ctx context.Context, pkg catalog.Package) error {
	f.uninstalled = append(f.uninstalled, pkg.Name)
	return f.mutErr
}

func (f *fakeScanner) Update(ctx context.Context, pkg catalog.Package) error {
	f.updated = append(f.updated, pkg.Name)
	return f.mutErr
}

func pkg(name string, source catalog.Source) catalog.Package {
	return catalog.New(name, source)
}

func TestScanAll_MergesAllSources(t *testing.T) {
	t.Parallel()

	o := NewOrchestrator([]Scanner{
		&fakeScanner{source: catalog.SourceApt, available: true,
			packages: []catalog.Package{pkg("htop", catalog.SourceApt), pkg("vim", catalog.SourceApt)}},
		&fakeScanner{source: catalog.SourceSnap, available: true,
			packages: []catalog.Package{pkg("firefox", catalog.SourceSnap)}},
	})

	all := o.ScanAll(context.Background())
	if len(all) != 3 {
		t.Fatalf("merged %d packages, want 3", len(all))
	}
}

func TestScanAll_IsolatesFailures(t *testing.T) {
	t.Parallel()

	o := NewOrchestrator([]Scanner{
		&fakeScanner{source: catalog.SourceApt, available: true, scanErr: errors.New("dpkg broke")},
		&fakeScanner{source: catalog.SourceSnap, available: false,
			packages: []catalog.Package{pkg("ignored", catalog.SourceSnap)}},
		&fakeScanner{source: catalog.SourceFlatpak, available: true,
			packages: []catalog.Package{pkg("gimp", catalog.SourceFlatpak)}},
	})

	all := o.ScanAll(context.Background())
	if len(all) != 1 || all[0].Name != "gimp" {
		t.Fatalf("got %d packages, want just gimp", len(all))
	}
}

func TestScanAllStreaming_PerSourceOrdering(t *testing.T) {
	t.Parallel()

	o := NewOrchestrator([]Scanner{
		&fakeScanner{source: catalog.SourceApt, available: true, delay: 20 * time.Millisecond,
			packages: []catalog.Package{pkg("htop", catalog.SourceApt)}},
		&fakeScanner{source: catalog.SourceSnap, available: true,
			packages: []catalog.Package{pkg("firefox", catalog.SourceSnap)}},
		&fakeScanner{source: catalog.SourceFlatpak, available: true, scanErr: errors.New("boom")},
		&fakeScanner{source: catalog.SourceAppImage, available: false},
	})

	type state struct {
		started, completed bool
		batches            int
	}
	seen := map[catalog.Source]*state{}
	var doneSeen bool
	var eventsAfterDone int

	for msg := range o.ScanAllStreaming(context.Background()) {
		if doneSeen {
			eventsAfterDone++
		}
		switch msg.Kind {
		case ScanStarted:
			if seen[msg.Source] != nil {
				t.Fatalf("%s started twice", msg.Source)
			}
			seen[msg.Source] = &state{started: true}
		case ScanPackages:
			st := seen[msg.Source]
			if st == nil || !st.started {
				t.Fatalf("%s packages before started", msg.Source)
			}
			if st.completed {
				t.Fatalf("%s packages after completed", msg.Source)
			}
			st.batches++
			if len(msg.Packages) == 0 {
				t.Fatalf("%s sent an empty batch", msg.Source)
			}
		case ScanCompleted:
			st := seen[msg.Source]
			if st == nil || !st.started {
				t.Fatalf("%s completed before started", msg.Source)
			}
			st.completed = true
		case ScanDone:
			for src, st := range seen {
				if !st.completed {
					t.Fatalf("Done before %s completed", src)
				}
			}
			doneSeen = true
		}
	}

	if !doneSeen {
		t.Fatal("never received Done")
	}
	if eventsAfterDone != 0 {
		t.Fatalf("%d events after Done", eventsAfterDone)
	}
	if len(seen) != 4 {
		t.Fatalf("saw %d sources, want 4", len(seen))
	}
	// Failing and unavailable sources still report Started/Completed but
	// contribute no package batches.
	if seen[catalog.SourceFlatpak].batches != 0 {
		t.Error("failed scanner should not emit package batches")
	}
	if seen[catalog.SourceAppImage].batches != 0 {
		t.Error("unavailable scanner should not emit package batches")
	}
}

func TestCheckAllUpdates_MergesAndExcludesAppImage(t *testing.T) {
	t.Parallel()

	appimage := &fakeScanner{source: catalog.SourceAppImage, available: true,
		updates: []UpdateInfo{{Name: "should-not-appear", NewVersion: "1.0"}}}

	o := NewOrchestrator([]Scanner{
		&fakeScanner{source: catalog.SourceApt, available: true,
			updates: []UpdateInfo{{Name: "vim", NewVersion: "9.1"}}},
		&fakeScanner{source: catalog.SourceSnap, available: true,
			updates: []UpdateInfo{{Name: "firefox", NewVersion: "131.0"}}},
		&fakeScanner{source: catalog.SourceFlatpak, available: true, updateErr: errors.New("remote down")},
		appimage,
	})

	updates := o.CheckAllUpdates(context.Background())
	if len(updates) != 2 {
		t.Fatalf("merged %d updates, want 2", len(updates))
	}
	if updates["vim"] != "9.1" || updates["firefox"] != "131.0" {
		t.Errorf("updates = %v", updates)
	}
	if _, ok := updates["should-not-appear"]; ok {
		t.Error("AppImage source must be excluded from update checks")
	}
}

func TestForSource(t *testing.T) {
	t.Parallel()

	apt := &fakeScanner{source: catalog.SourceApt}
	snap := &fakeScanner{source: catalog.SourceSnap}
	scanners := []Scanner{apt, snap}

	if ForSource(scanners, catalog.SourceSnap) != snap {
		t.Error("ForSource(snap) returned wrong scanner")
	}
	if ForSource(scanners, catalog.SourceDebFile) != apt {
		t.Error("deb-file packages should route to the apt scanner")
	}
	if ForSource(scanners, catalog.SourceFlatpak) != nil {
		t.Error("missing source should return nil")
	}
}
