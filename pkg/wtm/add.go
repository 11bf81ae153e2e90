package wtm

import (
	"fmt"
	"path/filepath"
)

// Add creates a worktree for an existing branch. A branch that only exists
// on the remote gets a local tracking branch first.
func (w *realWTM) Add(name string) error {
	layout, err := w.layout()
	if err != nil {
		return err
	}

	worktreePath := filepath.Join(layout.Root, name)
	exists, err := w.deps.FS.Exists(worktreePath)
	if err != nil {
		return fmt.Errorf("failed to check worktree directory: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrWorktreeExists, worktreePath)
	}

	local, err := w.deps.Git.BranchExists(layout.BareStore, name)
	if err != nil {
		return err
	}

	if !local {
		remote := w.deps.Config.Remote
		onRemote, err := w.deps.Git.RemoteBranchExists(layout.BareStore, remote, name)
		if err != nil {
			return err
		}
		if !onRemote {
			return fmt.Errorf("%w: %s exists neither locally nor on %s",
				ErrBranchNotFound, name, remote)
		}

		w.VerbosePrint("Creating local tracking branch for %s/%s", remote, name)
		if err := w.deps.Git.CreateTrackingBranch(layout.BareStore, name, remote); err != nil {
			return err
		}
	}

	if err := w.deps.Git.AddWorktree(layout.BareStore, worktreePath, name); err != nil {
		return err
	}

	w.runPostHooks(layout.Root, worktreePath)

	w.deps.Logger.Logf("Created worktree for %s at %s", name, worktreePath)
	return nil
}
