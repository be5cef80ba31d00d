package commands

import (
	"github.com/spf13/cobra"

	"github.com/rohnox/mirza/cmd/mirza/handlers"
)

// Uninstall returns the command that removes the deployment.
//
// It disables and deletes the nginx site, removes the deployment tree
// including the saved settings, and drops the cron entry. A confirmation
// prompt guards the operation; TLS certificates and system packages are
// left in place.
func Uninstall() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the deployment from this host",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Uninstall(cmd.Context())
		},
	}
}
