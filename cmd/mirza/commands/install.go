package commands

import (
	"github.com/spf13/cobra"

	"github.com/rohnox/mirza/cmd/mirza/handlers"
)

// Install returns the command that provisions the bot on this host.
//
// The command installs system packages, clones the bot sources into the
// deployment directory, collects the deployment settings interactively,
// configures nginx and TLS, registers the Telegram webhook and schedules
// the recurring job.
//
// Optional flags:
//
//	--force-reconfigure: discard the saved settings and webhook secret
//	                     and prompt for everything again
func Install() *cobra.Command {
	var forceReconfigure bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the bot on this host",
		Long: `Install provisions the complete bot deployment.

The install is idempotent: re-running it refreshes packages, sources and
configuration without duplicating nginx sites or cron entries. Saved
settings are reused unless --force-reconfigure is given.

Examples:
  # First install or repair an existing one
  mirza install

  # Re-enter the domain, token and admin ID from scratch
  mirza install --force-reconfigure`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Install(cmd.Context(), forceReconfigure)
		},
	}

	cmd.Flags().BoolVar(&forceReconfigure, "force-reconfigure", false, "Discard saved settings and prompt again")

	return cmd
}
