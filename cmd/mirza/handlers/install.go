// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/rohnox/mirza/internal/config"
	"github.com/rohnox/mirza/internal/config/wizard"
	"github.com/rohnox/mirza/internal/lifecycle"
	"github.com/rohnox/mirza/internal/permissions"
	"github.com/rohnox/mirza/internal/platform/apt"
	"github.com/rohnox/mirza/internal/platform/certbot"
	"github.com/rohnox/mirza/internal/platform/composer"
	"github.com/rohnox/mirza/internal/platform/cron"
	"github.com/rohnox/mirza/internal/platform/gitrepo"
	"github.com/rohnox/mirza/internal/platform/nginx"
	"github.com/rohnox/mirza/internal/platform/phpfpm"
	"github.com/rohnox/mirza/internal/platform/telegram"
	"github.com/rohnox/mirza/internal/util/prerequisites"
	"github.com/rohnox/mirza/internal/util/token"
)

// webhookSetter interface for testing - matches telegram.Client.
type webhookSetter interface {
	SetWebhook(ctx context.Context, url string, dropPending bool) error
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// geteuid reports the effective user id.
	geteuid = os.Geteuid

	// aptUpdate refreshes the package index.
	aptUpdate = apt.Update

	// aptInstall installs system packages.
	aptInstall = apt.Install

	// checkPrereqs runs prerequisite checks.
	checkPrereqs = prerequisites.CheckDefault

	// syncRepo clones or fast-forwards the bot sources and hands the tree
	// to the service account.
	syncRepo = gitrepo.Sync

	// recordExists probes for a saved deployment record.
	recordExists = config.Exists

	// loadRecord reads the saved deployment record.
	loadRecord = config.Load

	// writeRecord persists the deployment record.
	writeRecord = config.Write

	// patchAppConfig rewrites the bot's own config file from the record.
	patchAppConfig = config.PatchAppConfig

	// runWizard prompts for the deployment settings.
	runWizard = wizard.Run

	// newSecret generates a fresh webhook secret.
	newSecret = token.NewWebhookSecret

	// composerInstall installs the bot's PHP dependencies.
	composerInstall = composer.Install

	// detectPHP detects the installed PHP version.
	detectPHP = phpfpm.DetectVersion

	// applySite writes, enables and activates the nginx site.
	applySite = nginx.Apply

	// reloadNginx reloads the active nginx configuration.
	reloadNginx = nginx.Reload

	// obtainCert requests a TLS certificate for the domain.
	obtainCert = certbot.Obtain

	// normalizeTree fixes ownership and modes across the deployment.
	normalizeTree = permissions.NormalizeTree

	// scheduleJob reconciles the recurring-job crontab entry.
	scheduleJob = cron.Schedule

	// removeJob drops the recurring-job crontab entry.
	removeJob = cron.Remove

	// newTelegram creates a Bot API client.
	newTelegram = func(botToken string) webhookSetter {
		return telegram.NewClient(botToken)
	}
)

// requireRoot refuses to run without root privileges. Every lifecycle
// operation writes below /etc and /var/www.
func requireRoot() error {
	if geteuid() != 0 {
		return errors.New("this operation requires root privileges, re-run with sudo")
	}
	return nil
}

// Install provisions the complete bot deployment on this host.
//
// The operation runs as an ordered step list:
//  1. Install system packages (nginx, PHP, composer, certbot, cron)
//  2. Verify the required host tools are present
//  3. Clone or fast-forward the bot sources
//  4. Load or collect the deployment settings and webhook secret
//  5. Install PHP dependencies via composer
//  6. Render and activate the nginx site
//  7. Obtain a TLS certificate (tolerated)
//  8. Normalize ownership and permissions (tolerated)
//  9. Reconcile the recurring-job schedule (tolerated)
//  10. Register the Telegram webhook (tolerated)
//
// Steps 7-10 are tolerated: a failure is recorded as a warning on the final
// summary instead of aborting, so a DNS or network hiccup leaves a repairable
// deployment behind. Re-running install is safe and repairs prior partial
// runs.
func Install(ctx context.Context, forceReconfigure bool) error {
	if err := requireRoot(); err != nil {
		return err
	}

	lctx := lifecycle.NewContext(ctx)
	steps := []lifecycle.Step{
		{Name: "system packages", Run: installPackages},
		{Name: "host prerequisites", Run: verifyPrerequisites},
		{Name: "source sync", Run: syncSource},
		{Name: "configuration", Run: collectConfiguration(forceReconfigure)},
		{Name: "php dependencies", Run: installDependencies},
		{Name: "nginx site", Run: configureSite},
		{Name: "tls certificate", Run: issueCertificate, Tolerated: true},
		{Name: "permissions", Run: normalizePermissions, Tolerated: true},
		{Name: "cron schedule", Run: scheduleRecurringJob, Tolerated: true},
		{Name: "webhook", Run: registerWebhook, Tolerated: true},
	}

	if err := lifecycle.Run(lctx, steps); err != nil {
		return err
	}

	printInstallSummary(lctx.State)
	return nil
}

func installPackages(_ *lifecycle.Context) error {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Installing system packages..."
	s.Start()
	defer s.Stop()

	if err := aptUpdate(); err != nil {
		return err
	}
	return aptInstall(apt.Packages()...)
}

func verifyPrerequisites(ctx *lifecycle.Context) error {
	res := checkPrereqs()
	if res.HasErrors() {
		return res.Error()
	}
	for _, r := range res.Results {
		if r.Found && r.Version != "" {
			ctx.Observer.Printf("found %s: %s", r.Tool.Name, r.Version)
		}
	}
	return nil
}

// syncSource fetches the sources and, via Sync's ownership hand-off, leaves
// the tree owned by the service account before composer runs as it.
func syncSource(_ *lifecycle.Context) error {
	return syncRepo(config.DeploymentRoot, config.SourceURL, config.ServiceUser)
}

// collectConfiguration loads the saved record, or prompts for the settings
// and persists a fresh record with a new webhook secret. The secret rotates
// only when no record exists or force is set; otherwise the existing webhook
// registration stays valid across reinstalls.
func collectConfiguration(force bool) func(*lifecycle.Context) error {
	return func(ctx *lifecycle.Context) error {
		if !force && recordExists(config.DeploymentRoot) {
			rec, err := loadRecord(config.DeploymentRoot)
			if err != nil {
				return err
			}
			ctx.State.Record = rec
			return patchAppConfig(config.DeploymentRoot, rec)
		}

		answers, err := runWizard(ctx)
		if err != nil {
			return err
		}
		secret, err := newSecret()
		if err != nil {
			return err
		}

		rec := &config.Record{
			Domain:        answers.Domain,
			BotToken:      answers.BotToken,
			AdminID:       answers.AdminID,
			WebhookSecret: secret,
		}
		if err := writeRecord(config.DeploymentRoot, rec); err != nil {
			return err
		}
		ctx.State.Record = rec
		return patchAppConfig(config.DeploymentRoot, rec)
	}
}

func installDependencies(_ *lifecycle.Context) error {
	return composerInstall(config.DeploymentRoot, config.ServiceUser)
}

func configureSite(ctx *lifecycle.Context) error {
	version, err := detectPHP()
	if err != nil {
		return err
	}
	ctx.State.PHPVersion = version

	content, err := nginx.Render(nginx.SiteParams{
		Domain:        ctx.State.Record.Domain,
		Root:          config.DeploymentRoot,
		WebhookSecret: ctx.State.Record.WebhookSecret,
		EntryScript:   config.WebhookEntryScript,
		Socket:        phpfpm.SocketPath(version),
	})
	if err != nil {
		return err
	}
	return applySite(config.SiteName, content)
}

func issueCertificate(ctx *lifecycle.Context) error {
	return obtainCert(ctx.State.Record.Domain)
}

func normalizePermissions(_ *lifecycle.Context) error {
	return normalizeTree(config.DeploymentRoot, config.ServiceUser)
}

func scheduleRecurringJob(_ *lifecycle.Context) error {
	scheduled, err := scheduleJob(config.DeploymentRoot, config.PHPBinary, config.CronScript)
	if err != nil {
		return err
	}
	if !scheduled {
		return fmt.Errorf("%s not found in deployment, schedule entry removed", config.CronScript)
	}
	return nil
}

func registerWebhook(ctx *lifecycle.Context) error {
	rec := ctx.State.Record
	return newTelegram(rec.BotToken).SetWebhook(ctx, rec.WebhookURL(), true)
}
