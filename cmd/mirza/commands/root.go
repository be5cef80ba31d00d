// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing
// and flag binding. Command execution is delegated to handler functions in the
// handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/rohnox/mirza/cmd/mirza/handlers"
)

// Root returns the root command for the mirza CLI.
//
// Invoked without a subcommand it opens the interactive menu, which offers
// the same lifecycle operations as the install, update and uninstall
// subcommands.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mirza",
		Short: "Deploy and maintain the mirza Telegram bot on this host",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Menu(cmd.Context())
		},
	}

	cmd.AddCommand(Install())
	cmd.AddCommand(Update())
	cmd.AddCommand(Uninstall())
	cmd.AddCommand(Version())

	return cmd
}
