// Package wizard collects operator-supplied deployment settings.
//
// The install wizard prompts for the three required values; each input
// repeats until a non-empty value is supplied. Uninstall confirmation also
// lives here so all interactive surfaces share one package.
package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Result holds the operator's answers.
type Result struct {
	Domain   string
	BotToken string
	AdminID  string
}

// Run prompts for the deployment settings.
func Run(ctx context.Context) (*Result, error) {
	var res Result

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Bot Domain").
				Description("Domain pointing at this host").
				Placeholder("bot.example.com").
				Value(&res.Domain).
				Validate(notEmpty("domain")),
			huh.NewInput().
				Title("Bot Token").
				Description("Telegram Bot API token from @BotFather").
				EchoMode(huh.EchoModePassword).
				Value(&res.BotToken).
				Validate(notEmpty("bot token")),
			huh.NewInput().
				Title("Admin ID").
				Description("Numeric Telegram user id of the administrator").
				Placeholder("42").
				Value(&res.AdminID).
				Validate(notEmpty("admin id")),
		).Title("Deployment Settings"),
	).RunWithContext(ctx)
	if err != nil {
		return nil, err
	}

	res.Domain = strings.TrimSpace(res.Domain)
	res.BotToken = strings.TrimSpace(res.BotToken)
	res.AdminID = strings.TrimSpace(res.AdminID)
	return &res, nil
}

// ConfirmUninstall asks for explicit confirmation before removal. The
// default answer is No.
func ConfirmUninstall(ctx context.Context, root string) (bool, error) {
	confirmed := false

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Remove deployment?").
				Description(fmt.Sprintf("This deletes %s, the nginx site and the schedule entry.", root)).
				Affirmative("Yes, remove").
				Negative("No").
				Value(&confirmed),
		),
	).RunWithContext(ctx)
	if err != nil {
		return false, err
	}
	return confirmed, nil
}

func notEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s must not be empty", field)
		}
		return nil
	}
}
