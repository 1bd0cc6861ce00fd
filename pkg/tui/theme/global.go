// ABOUTME: Process-wide active theme, swapped atomically
// ABOUTME: Render code reads it every frame; startup writes it once

package theme

import "sync/atomic"

// The active theme is read on every render frame but written only at
// startup, when config or a --theme flag resolves. An atomic pointer
// keeps reads lock-free.
var active atomic.Pointer[Theme]

func init() {
	active.Store(&Theme{Name: "default", Palette: DefaultPalette()})
}

// Current returns the active theme. Never nil.
func Current() *Theme {
	return active.Load()
}

// Set replaces the active theme for subsequent renders.
func Set(t *Theme) {
	active.Store(t)
}
