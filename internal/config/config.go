// Package config persists and loads the deployment configuration record.
//
// The record is a dotenv file at the deployment root holding the four
// values every later step derives its inputs from. It is created once
// during install and read fresh by each step that needs it; update never
// writes it.
package config

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"strconv"

	"github.com/joho/godotenv"
)

// Record is the deployment configuration.
type Record struct {
	// Domain is the public hostname the deployment is served under.
	Domain string

	// BotToken is the Telegram Bot API token.
	BotToken string

	// AdminID is the Telegram user id of the administrator.
	AdminID string

	// WebhookSecret is the random path segment authenticating inbound
	// webhook calls. Generated exactly once per deployment.
	WebhookSecret string
}

// Validate reports the first empty required field.
func (r *Record) Validate() error {
	switch {
	case r.Domain == "":
		return errors.New(KeyDomain + " is empty")
	case r.BotToken == "":
		return errors.New(KeyBotToken + " is empty")
	case r.AdminID == "":
		return errors.New(KeyAdminID + " is empty")
	case r.WebhookSecret == "":
		return errors.New(KeyWebhookSecret + " is empty")
	}
	return nil
}

// WebhookURL returns the public webhook endpoint derived from the record.
func (r *Record) WebhookURL() string {
	return fmt.Sprintf("https://%s/%s", r.Domain, r.WebhookSecret)
}

// Exists reports whether a record file is present under root.
func Exists(root string) bool {
	_, err := os.Stat(RecordPath(root))
	return err == nil
}

// Load reads and validates the record under root.
func Load(root string) (*Record, error) {
	values, err := godotenv.Read(RecordPath(root))
	if err != nil {
		return nil, fmt.Errorf("failed to read deployment record: %w", err)
	}

	rec := &Record{
		Domain:        values[KeyDomain],
		BotToken:      values[KeyBotToken],
		AdminID:       values[KeyAdminID],
		WebhookSecret: values[KeyWebhookSecret],
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deployment record: %w", err)
	}
	return rec, nil
}

// chownRecord hands the record file to the service account - replaced in
// tests, which do not run as root.
var chownRecord = func(path string) error {
	u, err := user.Lookup(ServiceUser)
	if err != nil {
		return fmt.Errorf("failed to look up %s: %w", ServiceUser, err)
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return fmt.Errorf("unexpected uid %q: %w", u.Uid, err)
	}
	gid, err := strconv.Atoi(u.Gid)
	if err != nil {
		return fmt.Errorf("unexpected gid %q: %w", u.Gid, err)
	}
	return os.Chown(path, uid, gid)
}

// Write persists the record under root, readable only by its owner, and
// hands it to the service account.
func Write(root string, rec *Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	path := RecordPath(root)
	values := map[string]string{
		KeyDomain:        rec.Domain,
		KeyBotToken:      rec.BotToken,
		KeyAdminID:       rec.AdminID,
		KeyWebhookSecret: rec.WebhookSecret,
	}
	if err := godotenv.Write(values, path); err != nil {
		return fmt.Errorf("failed to write deployment record: %w", err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("failed to chmod deployment record: %w", err)
	}
	if err := chownRecord(path); err != nil {
		return fmt.Errorf("failed to chown deployment record: %w", err)
	}
	return nil
}
