// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --version, --update, --check-update, --theme, --config, --verbose

package main

import "flag"

type cliArgs struct {
	version     bool
	update      bool
	checkUpdate bool
	verbose     bool
	theme       string
	config      string
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.BoolVar(&args.version, "version", false, "Show version and exit")
	flag.BoolVar(&args.update, "update", false, "Self-update to the latest release")
	flag.BoolVar(&args.checkUpdate, "check-update", false, "Check for a newer release without installing")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.StringVar(&args.theme, "theme", "", "Theme name (overrides config)")
	flag.StringVar(&args.config, "config", "", "Config file path (default ~/.config/pkgscope/config.yaml)")

	flag.Parse()
	return args
}
