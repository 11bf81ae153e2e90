package wtm

import (
	"fmt"
	"path/filepath"
)

// RemoveOpts contains optional parameters for Remove.
type RemoveOpts struct {
	// DeleteBranch also force-deletes the branch after removing the worktree.
	DeleteBranch bool
}

// Remove removes the worktree registered at <root>/<name>. Branch deletion
// is a second, independent step: its failure is reported but never undoes
// the worktree removal.
func (w *realWTM) Remove(name string, opts RemoveOpts) error {
	layout, err := w.layout()
	if err != nil {
		return err
	}

	worktreePath := filepath.Join(layout.Root, name)
	exists, err := w.deps.FS.Exists(worktreePath)
	if err != nil {
		return fmt.Errorf("failed to check worktree directory: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrWorktreeNotFound, worktreePath)
	}

	if err := w.deps.Git.RemoveWorktree(layout.BareStore, worktreePath, false); err != nil {
		return err
	}

	w.deps.Logger.Logf("Removed worktree %s", worktreePath)

	if opts.DeleteBranch {
		if err := w.deps.Git.DeleteBranch(layout.BareStore, name, true); err != nil {
			return fmt.Errorf("worktree removed, but branch deletion failed: %w", err)
		}
		w.deps.Logger.Logf("Deleted branch %s", name)
	}

	return nil
}
