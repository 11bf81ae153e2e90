package hooks

import "errors"

// Hook-specific error types.
var (
	ErrInvalidHookFile = errors.New("invalid hook file")
	ErrHookFailed      = errors.New("hook command failed")
)
