package worktree

import "errors"

// Worktree-specific error types.
var (
	ErrParse      = errors.New("unparseable worktree list output")
	ErrListFailed = errors.New("failed to list worktrees")
)
