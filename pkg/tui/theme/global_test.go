// ABOUTME: Tests for the process-wide active theme pointer
// ABOUTME: Covers the default, swapping, and concurrent reads

package theme

import (
	"sync"
	"testing"
)

func TestCurrent_DefaultBeforeAnySet(t *testing.T) {
	th := Current()
	if th == nil {
		t.Fatal("Current() returned nil")
	}
	if th.Name != "default" {
		t.Errorf("Current().Name = %q; want %q", th.Name, "default")
	}
}

func TestSet_SwapsActiveTheme(t *testing.T) {
	old := Current()
	defer Set(old)

	gruvbox := Builtin("gruvbox")
	if gruvbox == nil {
		t.Fatal("gruvbox builtin missing")
	}
	Set(gruvbox)

	if got := Current(); got.Name != "gruvbox" {
		t.Errorf("after Set, Current().Name = %q; want %q", got.Name, "gruvbox")
	}
}

func TestCurrent_ConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() {
			if Current() == nil {
				t.Error("Current() returned nil under concurrency")
			}
		})
	}
	wg.Wait()
}
