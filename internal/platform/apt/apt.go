// Package apt installs system packages through the host package manager.
//
// Dependency resolution is the package manager's job; this package only
// sequences the non-interactive invocation and surfaces its output on
// failure.
package apt

import (
	"fmt"
	"os"
	"os/exec"
)

// runCommand executes a command and captures combined output - replaced in
// tests.
var runCommand = func(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), "DEBIAN_FRONTEND=noninteractive")
	return cmd.CombinedOutput()
}

// Packages returns the system and runtime packages the deployment needs.
func Packages() []string {
	return []string{
		"nginx",
		"php-fpm",
		"php-cli",
		"php-curl",
		"php-mbstring",
		"php-zip",
		"composer",
		"certbot",
		"python3-certbot-nginx",
		"cron",
		"unzip",
	}
}

// Update refreshes the package index.
func Update() error {
	if out, err := runCommand("apt-get", "update"); err != nil {
		return fmt.Errorf("apt-get update failed: %w\n%s", err, out)
	}
	return nil
}

// Install installs the given packages non-interactively.
func Install(packages ...string) error {
	args := append([]string{"install", "-y"}, packages...)
	if out, err := runCommand("apt-get", args...); err != nil {
		return fmt.Errorf("apt-get install failed: %w\n%s", err, out)
	}
	return nil
}
