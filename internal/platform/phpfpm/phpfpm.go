// Package phpfpm discovers the installed PHP runtime.
package phpfpm

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// runCommand executes a command and captures stdout - replaced in tests.
var runCommand = func(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

var versionPattern = regexp.MustCompile(`^\d+\.\d+$`)

// DetectVersion returns the installed PHP MAJOR.MINOR version, e.g. "8.2".
func DetectVersion() (string, error) {
	out, err := runCommand("php", "-r", `echo PHP_MAJOR_VERSION.".".PHP_MINOR_VERSION;`)
	if err != nil {
		return "", fmt.Errorf("failed to run php: %w", err)
	}

	version := strings.TrimSpace(string(out))
	if !versionPattern.MatchString(version) {
		return "", fmt.Errorf("unexpected php version output %q", version)
	}
	return version, nil
}

// SocketPath returns the php-fpm unix socket for a runtime version.
func SocketPath(version string) string {
	return fmt.Sprintf("/run/php/php%s-fpm.sock", version)
}
