package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rohnox/mirza/internal/config"
	"github.com/rohnox/mirza/internal/lifecycle"
)

var (
	summaryColorGreen  = lipgloss.Color("#22c55e")
	summaryColorYellow = lipgloss.Color("#eab308")
	summaryColorBlue   = lipgloss.Color("#3b82f6")
	summaryColorDim    = lipgloss.Color("#6b7280")
	summaryColorWhite  = lipgloss.Color("#f9fafb")
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(summaryColorWhite)

	summarySectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(summaryColorBlue)

	summaryDimStyle = lipgloss.NewStyle().
			Foreground(summaryColorDim)

	summaryOkStyle = lipgloss.NewStyle().
			Foreground(summaryColorGreen)

	summaryWarnStyle = lipgloss.NewStyle().
				Foreground(summaryColorYellow)
)

// renderMenu produces the interactive menu text.
func renderMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(summaryTitleStyle.Render("  mirza deployment"))
	b.WriteString("\n")
	b.WriteString(summaryDimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n\n")
	b.WriteString("    1) Install the bot\n")
	b.WriteString("    2) Update to the latest sources\n")
	b.WriteString("    3) Uninstall\n")
	b.WriteString("    0) Exit\n")

	return b.String()
}

// printInstallSummary reports the deployment endpoints and any warnings
// collected by tolerated steps.
func printInstallSummary(state *lifecycle.State) {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(summaryTitleStyle.Render("  mirza installed"))
	b.WriteString("\n")
	b.WriteString(summaryDimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n\n")

	if state.Record != nil {
		b.WriteString(fmt.Sprintf("    Domain:   %s\n", state.Record.Domain))
		b.WriteString(fmt.Sprintf("    Webhook:  %s\n", state.Record.WebhookURL()))
	}
	b.WriteString(fmt.Sprintf("    Root:     %s\n", config.DeploymentRoot))
	if state.PHPVersion != "" {
		b.WriteString(fmt.Sprintf("    PHP:      %s\n", state.PHPVersion))
	}

	renderWarnings(&b, state.Warnings)

	if len(state.Warnings) == 0 {
		b.WriteString("\n")
		b.WriteString(summaryOkStyle.Render("  The bot is live."))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		b.WriteString(summaryDimStyle.Render("  Fix the warnings above, then re-run mirza install to repair."))
		b.WriteString("\n")
	}

	fmt.Print(b.String())
}

// printUpdateSummary reports the update outcome.
func printUpdateSummary(state *lifecycle.State) {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(summaryTitleStyle.Render("  mirza updated"))
	b.WriteString("\n")

	renderWarnings(&b, state.Warnings)

	if len(state.Warnings) == 0 {
		b.WriteString(summaryOkStyle.Render("  Deployment refreshed."))
		b.WriteString("\n")
	}

	fmt.Print(b.String())
}

// printUninstallSummary reports what was removed and what remains.
func printUninstallSummary(state *lifecycle.State) {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(summaryTitleStyle.Render("  mirza removed"))
	b.WriteString("\n")

	renderWarnings(&b, state.Warnings)

	b.WriteString(summaryDimStyle.Render("  TLS certificates and system packages were kept."))
	b.WriteString("\n")

	fmt.Print(b.String())
}

func renderWarnings(b *strings.Builder, warnings []string) {
	if len(warnings) == 0 {
		return
	}

	b.WriteString("\n")
	b.WriteString(summarySectionStyle.Render("  Warnings"))
	b.WriteString("\n")
	for _, w := range warnings {
		b.WriteString(summaryWarnStyle.Render("    ! " + w))
		b.WriteString("\n")
	}
}
