package nginx

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// defaultSiteName is the distribution's fallback site; its enable link
// shadows ours on a fresh host.
const defaultSiteName = "default"

// Site directories are package variables so tests can point them at a temp
// directory.
var (
	sitesAvailable = "/etc/nginx/sites-available"
	sitesEnabled   = "/etc/nginx/sites-enabled"
)

// runCommand executes a command and captures combined output - replaced in
// tests.
var runCommand = func(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

// WriteSite writes the descriptor for name, fully replacing any prior one.
func WriteSite(name string, content []byte) error {
	path := filepath.Join(sitesAvailable, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write site %s: %w", name, err)
	}
	return nil
}

// Enable links the descriptor into the active-sites directory.
func Enable(name string) error {
	link := filepath.Join(sitesEnabled, name)
	if err := os.Remove(link); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing link for %s: %w", name, err)
	}
	if err := os.Symlink(filepath.Join(sitesAvailable, name), link); err != nil {
		return fmt.Errorf("failed to enable site %s: %w", name, err)
	}
	return nil
}

// Disable removes the enable link for name.
func Disable(name string) error {
	if err := os.Remove(filepath.Join(sitesEnabled, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to disable site %s: %w", name, err)
	}
	return nil
}

// RemoveSite deletes the descriptor for name.
func RemoveSite(name string) error {
	if err := os.Remove(filepath.Join(sitesAvailable, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove site %s: %w", name, err)
	}
	return nil
}

// RemoveDefault drops the distribution's default enable link.
func RemoveDefault() error {
	return Disable(defaultSiteName)
}

// Test validates the full nginx configuration syntactically.
func Test() error {
	if out, err := runCommand("nginx", "-t"); err != nil {
		return fmt.Errorf("nginx configuration test failed: %w\n%s", err, out)
	}
	return nil
}

// Reload signals nginx to pick up the active configuration.
func Reload() error {
	if out, err := runCommand("systemctl", "reload", "nginx"); err != nil {
		return fmt.Errorf("failed to reload nginx: %w\n%s", err, out)
	}
	return nil
}

// Apply writes, enables and activates the descriptor for name. A syntax
// failure aborts before the reload, leaving the previous configuration in
// effect.
func Apply(name string, content []byte) error {
	if err := WriteSite(name, content); err != nil {
		return err
	}
	if err := Enable(name); err != nil {
		return err
	}
	if err := RemoveDefault(); err != nil {
		return err
	}
	if err := Test(); err != nil {
		return err
	}
	return Reload()
}
