package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// appConfigFileName is the bot's own configuration file. It is an optional
// collaborator: patching happens only when the file is present.
const appConfigFileName = "config.php"

var (
	botTokenPattern = regexp.MustCompile(`(\$botToken\s*=\s*)(['"])[^'"]*['"]`)
	adminIDPattern  = regexp.MustCompile(`(\$adminId\s*=\s*)(['"])[^'"]*['"]`)
)

// PatchAppConfig substitutes the bot token and admin id into the
// application's config.php under root. Absence of the file is not an error.
func PatchAppConfig(root string, rec *Record) error {
	path := filepath.Join(root, appConfigFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", appConfigFileName, err)
	}

	patched := substitute(botTokenPattern, string(data), rec.BotToken)
	patched = substitute(adminIDPattern, patched, rec.AdminID)
	if patched == string(data) {
		return nil
	}

	if err := os.WriteFile(path, []byte(patched), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", appConfigFileName, err)
	}
	return nil
}

func substitute(pattern *regexp.Regexp, content, value string) string {
	// $ in the value would be expanded by the replacement template.
	escaped := strings.ReplaceAll(value, "$", "$$")
	return pattern.ReplaceAllString(content, "${1}${2}"+escaped+"${2}")
}
