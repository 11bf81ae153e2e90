// Package git provides Git operations and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrNoUpstream     = errors.New("no upstream configured")
	ErrNoRemoteBranch = errors.New("no remote branch found")
)
