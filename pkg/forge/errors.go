package forge

import "errors"

// Forge-specific errors.
var (
	ErrInvalidRepoFormat  = errors.New("invalid repository format")
	ErrRepositoryNotFound = errors.New("repository not found")
	ErrRateLimited        = errors.New("rate limited by forge API")
	ErrUnauthorized       = errors.New("unauthorized access to forge API")
)
