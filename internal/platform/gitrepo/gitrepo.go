// Package gitrepo synchronizes the application source tree.
//
// An existing checkout is fast-forwarded in place so repeated runs are
// incremental; anything else at the destination is replaced by a fresh
// shallow clone. Either way the synchronized tree is handed to the service
// account before Sync returns, so steps running as that account can always
// write into it.
package gitrepo

import (
	"errors"
	"fmt"
	"os"

	git "github.com/go-git/go-git/v5"

	"github.com/rohnox/mirza/internal/permissions"
)

// Function variables - replaced in tests.
var (
	plainOpen     = git.PlainOpen
	plainClone    = git.PlainClone
	removeAll     = os.RemoveAll
	normalizeTree = permissions.NormalizeTree
)

// Sync brings dest to the latest upstream revision of url and sets
// ownership of the whole tree to owner.
func Sync(dest, url, owner string) error {
	repo, err := plainOpen(dest)
	if err == nil {
		if err := pull(repo); err != nil {
			return err
		}
		return normalizeTree(dest, owner)
	}
	if !errors.Is(err, git.ErrRepositoryNotExists) {
		return fmt.Errorf("failed to open checkout at %s: %w", dest, err)
	}

	// No version-control marker: discard stale content and clone fresh.
	if err := removeAll(dest); err != nil {
		return fmt.Errorf("failed to clear stale destination: %w", err)
	}
	if _, err := plainClone(dest, false, &git.CloneOptions{
		URL:          url,
		Depth:        1,
		SingleBranch: true,
	}); err != nil {
		return fmt.Errorf("failed to clone %s: %w", url, err)
	}
	return normalizeTree(dest, owner)
}

// pull fast-forwards the checkout. Diverged history is surfaced as an
// error, never forced.
func pull(repo *git.Repository) error {
	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}

	err = wt.Pull(&git.PullOptions{SingleBranch: true})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to update checkout: %w", err)
	}
	return nil
}
