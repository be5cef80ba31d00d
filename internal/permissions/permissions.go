// Package permissions normalizes ownership and modes across a deployment
// tree.
package permissions

import (
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strconv"

	"github.com/rohnox/mirza/internal/config"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// Function variables - replaced in tests.
var (
	lookupUser = user.Lookup
	chown      = os.Chown
)

// ServiceAccount resolves the numeric uid and gid of a system account.
func ServiceAccount(name string) (int, int, error) {
	account, err := lookupUser(name)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to look up user %s: %w", name, err)
	}
	uid, err := strconv.Atoi(account.Uid)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid uid for user %s: %w", name, err)
	}
	gid, err := strconv.Atoi(account.Gid)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid gid for user %s: %w", name, err)
	}
	return uid, gid, nil
}

// Normalize walks root and applies uid:gid ownership, 0755 on directories
// and 0644 on regular files. Symlinks are left untouched. The deployment
// record is exempt: it holds the bot token and stays at the owner-only mode
// config.Write gave it.
func Normalize(root string, uid, gid int) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		if !entry.IsDir() && entry.Name() == config.RecordFileName {
			return nil
		}
		if err := chown(path, uid, gid); err != nil {
			return fmt.Errorf("failed to chown %s: %w", path, err)
		}
		mode := fs.FileMode(fileMode)
		if entry.IsDir() {
			mode = dirMode
		}
		if err := os.Chmod(path, mode); err != nil {
			return fmt.Errorf("failed to chmod %s: %w", path, err)
		}
		return nil
	})
}

// NormalizeTree resolves serviceUser and normalizes root in one call.
func NormalizeTree(root, serviceUser string) error {
	uid, gid, err := ServiceAccount(serviceUser)
	if err != nil {
		return err
	}
	return Normalize(root, uid, gid)
}
