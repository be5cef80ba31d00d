// Package composer drives the PHP dependency manager.
package composer

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// manifestName is the dependency manifest; without it there is nothing to
// install.
const manifestName = "composer.json"

// runCommand executes a command in dir - replaced in tests.
var runCommand = func(dir, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Install resolves production dependencies in root when a manifest is
// present, running as serviceUser. Without a manifest it is a no-op.
func Install(root, serviceUser string) error {
	if _, err := os.Stat(filepath.Join(root, manifestName)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to probe %s: %w", manifestName, err)
	}

	out, err := runCommand(root, "sudo", "-u", serviceUser,
		"composer", "install", "--no-dev", "--optimize-autoloader", "--no-interaction")
	if err != nil {
		return fmt.Errorf("composer install failed: %w\n%s", err, out)
	}
	return nil
}
