package commands

import (
	"github.com/spf13/cobra"

	"github.com/rohnox/mirza/cmd/mirza/handlers"
)

// Update returns the command that refreshes an existing deployment.
//
// Update pulls the latest bot sources, reinstalls PHP dependencies,
// normalizes permissions, reconciles the cron entry and reloads nginx.
// It never touches the saved settings or the webhook secret.
func Update() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update an existing deployment to the latest sources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Update(cmd.Context())
		},
	}
}
