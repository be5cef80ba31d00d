package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/rohnox/mirza/internal/config"
	"github.com/rohnox/mirza/internal/config/wizard"
	"github.com/rohnox/mirza/internal/lifecycle"
	"github.com/rohnox/mirza/internal/platform/nginx"
)

// Factory function variables for uninstall - can be replaced in tests.
var (
	// confirmUninstall asks the operator before anything is removed.
	confirmUninstall = wizard.ConfirmUninstall

	// disableSite removes the nginx enable link.
	disableSite = nginx.Disable

	// removeSiteFile deletes the nginx site descriptor.
	removeSiteFile = nginx.RemoveSite

	// removeTree deletes the deployment directory.
	removeTree = os.RemoveAll
)

// Uninstall removes the deployment from this host.
//
// It disables and deletes the nginx site, reloads nginx, removes the
// deployment tree including the saved record, and drops the cron entry.
// TLS certificates and system packages are deliberately left in place.
// Declining the confirmation prompt changes nothing.
func Uninstall(ctx context.Context) error {
	if err := requireRoot(); err != nil {
		return err
	}

	confirmed, err := confirmUninstall(ctx, config.DeploymentRoot)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("Uninstall aborted, nothing was changed.")
		return nil
	}

	lctx := lifecycle.NewContext(ctx)
	steps := []lifecycle.Step{
		{Name: "site removal", Run: removeSite},
		{Name: "nginx reload", Run: reloadSite, Tolerated: true},
		{Name: "tree removal", Run: removeDeployment},
		{Name: "cron removal", Run: removeSchedule},
	}

	if err := lifecycle.Run(lctx, steps); err != nil {
		return err
	}

	printUninstallSummary(lctx.State)
	return nil
}

func removeSite(_ *lifecycle.Context) error {
	if err := disableSite(config.SiteName); err != nil {
		return err
	}
	return removeSiteFile(config.SiteName)
}

func removeDeployment(_ *lifecycle.Context) error {
	return removeTree(config.DeploymentRoot)
}

func removeSchedule(_ *lifecycle.Context) error {
	return removeJob(config.DeploymentRoot)
}
