package config

import "path/filepath"

const (
	// DeploymentRoot is the fixed filesystem path of the synchronized bot
	// tree.
	DeploymentRoot = "/var/www/mirza"

	// SourceURL is the upstream repository the tree is synchronized from.
	SourceURL = "https://github.com/rohnox/mirza.git"

	// RecordFileName is the deployment record file inside the tree. The
	// leading dot marks it as internal state.
	RecordFileName = ".env"

	// ServiceUser is the account that owns the deployment tree and runs
	// the bot.
	ServiceUser = "www-data"

	// SiteName keys the nginx descriptor and its enable link.
	SiteName = "mirza"

	// WebhookEntryScript receives webhook calls routed from the secret
	// path.
	WebhookEntryScript = "index.php"

	// CronScript is the recurring job. The schedule entry is written only
	// when it exists in the tree.
	CronScript = "cron.php"

	// PHPBinary is the CLI runtime used by the cron entry.
	PHPBinary = "/usr/bin/php"
)

// Keys of the persisted deployment record.
const (
	KeyDomain        = "BOT_DOMAIN"
	KeyBotToken      = "BOT_TOKEN"
	KeyAdminID       = "ADMIN_ID"
	KeyWebhookSecret = "WEBHOOK_SECRET"
)

// RecordPath returns the record location inside root.
func RecordPath(root string) string {
	return filepath.Join(root, RecordFileName)
}
