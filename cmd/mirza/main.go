// Package main is the entry point for the mirza CLI.
//
// mirza deploys and maintains the mirza Telegram bot on a single Debian
// or Ubuntu host: it installs system packages, syncs the bot sources,
// configures nginx with TLS, registers the Telegram webhook and schedules
// the recurring job.
//
// Commands: install, update, uninstall. Running mirza with no arguments
// opens an interactive menu.
//
// For detailed usage information, run:
//
//	mirza --help
package main

import (
	"fmt"
	"os"

	"github.com/rohnox/mirza/cmd/mirza/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
