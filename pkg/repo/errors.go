package repo

import "errors"

// Locator-specific error types.
var (
	ErrNotManagedRepository = errors.New("not a managed repository")
)
