package wtm

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/wtm/pkg/branch"
)

// Branch creates a new branch from the bare store's HEAD and a worktree for
// it at <root>/<name>.
func (w *realWTM) Branch(name string) error {
	sanitized, err := branch.SanitizeBranchName(name)
	if err != nil {
		return err
	}

	layout, err := w.layout()
	if err != nil {
		return err
	}

	worktreePath := filepath.Join(layout.Root, sanitized)
	exists, err := w.deps.FS.Exists(worktreePath)
	if err != nil {
		return fmt.Errorf("failed to check worktree directory: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrWorktreeExists, worktreePath)
	}

	// Branch-exists and other git refusals are surfaced verbatim.
	if err := w.deps.Git.CreateBranch(layout.BareStore, sanitized); err != nil {
		return err
	}

	if err := w.deps.Git.AddWorktree(layout.BareStore, worktreePath, sanitized); err != nil {
		return err
	}

	w.runPostHooks(layout.Root, worktreePath)

	w.deps.Logger.Logf("Created branch %s with worktree at %s", sanitized, worktreePath)
	return nil
}
