package handlers

import (
	"context"

	"github.com/rohnox/mirza/internal/config"
	"github.com/rohnox/mirza/internal/lifecycle"
)

// Update refreshes an existing deployment to the latest sources.
//
// Every step is tolerated: an update failure never leaves the operation
// half-aborted, it collects warnings and reports them in the summary. The
// deployment record is read when present but never written; the webhook
// secret and registration are untouched.
func Update(ctx context.Context) error {
	if err := requireRoot(); err != nil {
		return err
	}

	lctx := lifecycle.NewContext(ctx)

	if recordExists(config.DeploymentRoot) {
		rec, err := loadRecord(config.DeploymentRoot)
		if err != nil {
			lctx.State.Warn("deployment record unreadable: " + err.Error())
		} else {
			lctx.State.Record = rec
		}
	} else {
		lctx.State.Warn("no deployment record found, run install to create one")
	}

	steps := []lifecycle.Step{
		{Name: "source sync", Run: syncSource, Tolerated: true},
		{Name: "php dependencies", Run: installDependencies, Tolerated: true},
		{Name: "permissions", Run: normalizePermissions, Tolerated: true},
		{Name: "cron schedule", Run: scheduleRecurringJob, Tolerated: true},
		{Name: "nginx reload", Run: reloadSite, Tolerated: true},
	}

	if err := lifecycle.Run(lctx, steps); err != nil {
		return err
	}

	printUpdateSummary(lctx.State)
	return nil
}

func reloadSite(_ *lifecycle.Context) error {
	return reloadNginx()
}
