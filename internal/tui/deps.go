// ABOUTME: Dependency injection struct for the Bubble Tea app
// ABOUTME: Bundles the scan orchestrator, settings and build metadata

package tui

import (
	"github.com/mauromedda/pkgscope/internal/config"
	"github.com/mauromedda/pkgscope/internal/scanner"
)

// AppDeps bundles all dependencies for the dashboard app.
type AppDeps struct {
	Orchestrator *scanner.Orchestrator
	Settings     *config.Settings
	Version      string
}
