package wtm

import "errors"

// Precondition errors, checked before any mutation happens.
var (
	// ErrTargetExists is returned by Clone when the destination directory
	// already exists.
	ErrTargetExists = errors.New("target directory already exists")

	// ErrWorktreeExists is returned when a worktree directory for the
	// requested branch is already present.
	ErrWorktreeExists = errors.New("worktree already exists")

	// ErrWorktreeNotFound is returned when no worktree directory exists for
	// the requested branch.
	ErrWorktreeNotFound = errors.New("worktree not found")

	// ErrBranchNotFound is returned by Add when the branch exists neither
	// locally nor on the remote.
	ErrBranchNotFound = errors.New("branch not found")
)
