package branch

import "errors"

// Branch-specific error types.
var (
	ErrNoBranchFound = errors.New("no branch found on remote")

	// Branch name validation errors.
	ErrBranchNameEmpty              = errors.New("branch name cannot be empty")
	ErrBranchNameSingleAt           = errors.New("branch name cannot be the single character @")
	ErrBranchNameContainsAtBrace    = errors.New("branch name cannot contain the sequence @{")
	ErrBranchNameContainsBackslash  = errors.New("branch name cannot contain backslash")
	ErrBranchNameEmptyAfterSanitize = errors.New("branch name becomes empty after sanitization")
)
