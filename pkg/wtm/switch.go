package wtm

import (
	"fmt"
	"path/filepath"
)

// Switch returns the absolute path of the worktree for the given branch. It
// is a pure query: no state changes, ever.
func (w *realWTM) Switch(name string) (string, error) {
	layout, err := w.layout()
	if err != nil {
		return "", err
	}

	worktreePath := filepath.Join(layout.Root, name)
	exists, err := w.deps.FS.Exists(worktreePath)
	if err != nil {
		return "", fmt.Errorf("failed to check worktree directory: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: %s (create it with 'wtm add %s' or 'wtm branch %s')",
			ErrWorktreeNotFound, worktreePath, name, name)
	}

	return worktreePath, nil
}
