// Package cron reconciles the recurring-job entry in the crontab.
//
// Entries are keyed by the deployment path: scheduling filters out every
// prior line referencing the path before appending a fresh one, so repeated
// installs and updates never accumulate duplicates.
package cron

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// schedule is the fixed five-minute interval of the recurring job.
const schedule = "*/5 * * * *"

// Function variables - replaced in tests.
var (
	readCrontab = func() ([]byte, error) {
		out, err := exec.Command("crontab", "-l").Output()
		if err != nil {
			// An empty crontab makes crontab -l exit non-zero; treat it
			// as no entries.
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to read crontab: %w", err)
		}
		return out, nil
	}

	writeCrontab = func(content []byte) error {
		cmd := exec.Command("crontab", "-")
		cmd.Stdin = bytes.NewReader(content)
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("failed to write crontab: %w\n%s", err, out)
		}
		return nil
	}

	statFile = os.Stat
)

// Entry returns the schedule line for the deployment at root.
func Entry(root, phpBinary, script string) string {
	return fmt.Sprintf("%s cd %s && %s %s >/dev/null 2>&1",
		schedule, root, phpBinary, filepath.Join(root, script))
}

// Schedule reconciles the crontab so it holds exactly one entry for the
// deployment at root, or none when the job script is absent from the tree.
// It reports whether an entry was scheduled.
func Schedule(root, phpBinary, script string) (bool, error) {
	if _, err := statFile(filepath.Join(root, script)); err != nil {
		if os.IsNotExist(err) {
			return false, Remove(root)
		}
		return false, fmt.Errorf("failed to probe %s: %w", script, err)
	}

	current, err := readCrontab()
	if err != nil {
		return false, err
	}

	lines := withoutDeployment(current, root)
	lines = append(lines, Entry(root, phpBinary, script))
	return true, writeCrontab(render(lines))
}

// Remove drops every entry referencing root.
func Remove(root string) error {
	current, err := readCrontab()
	if err != nil {
		return err
	}

	kept := withoutDeployment(current, root)
	if len(kept) == len(splitLines(current)) {
		return nil
	}
	return writeCrontab(render(kept))
}

func withoutDeployment(crontab []byte, root string) []string {
	var kept []string
	for _, line := range splitLines(crontab) {
		if strings.Contains(line, root) {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

func splitLines(crontab []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(crontab), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func render(lines []string) []byte {
	if len(lines) == 0 {
		return []byte{}
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}
