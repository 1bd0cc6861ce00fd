// ABOUTME: CLI entry point for pkgscope
// ABOUTME: Parses flags, loads config, resolves the theme, starts the dashboard

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/mauromedda/pkgscope/internal/config"
	pslog "github.com/mauromedda/pkgscope/internal/log"
	"github.com/mauromedda/pkgscope/internal/scanner"
	"github.com/mauromedda/pkgscope/internal/tui"
	"github.com/mauromedda/pkgscope/pkg/tui/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("pkgscope %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if args.update || args.checkUpdate {
		if err := runSelfUpdate(version, args.update); err != nil {
			fmt.Fprintf(os.Stderr, "update failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs) error {
	pslog.SetVerbose(args.verbose)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("pkgscope is interactive and needs a terminal")
	}

	cfg, err := config.Load(args.config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// First run: persist the defaults so users have a file to edit. Done
	// before flag overrides apply, so a one-off --theme is not written back.
	if args.config == "" {
		if _, statErr := os.Stat(config.File()); os.IsNotExist(statErr) {
			if saveErr := cfg.Save(); saveErr != nil {
				pslog.Debug("writing default config: %v", saveErr)
			}
		}
	}

	if args.theme != "" {
		cfg.Theme = args.theme
	}
	resolveTheme(cfg)

	orch := scanner.NewOrchestrator(scanner.DefaultScanners(cfg.AppImageDirs))

	return tui.Run(tui.AppDeps{
		Orchestrator: orch,
		Settings:     cfg,
		Version:      version,
	})
}

// resolveTheme activates the configured theme: built-in name first, then a
// JSON file from the themes directory. Unknown names keep the default.
func resolveTheme(cfg *config.Settings) {
	name := cfg.Theme
	if name == "" || name == "default" {
		return // already initialized to default
	}

	if th := theme.Builtin(name); th != nil {
		theme.Set(th)
		return
	}

	path := filepath.Join(config.ThemesDir(), name+".json")
	if th, err := theme.LoadFile(path); err == nil {
		theme.Set(th)
		return
	}

	fmt.Fprintf(os.Stderr, "warning: unknown theme %q, using default\n", name)
}
