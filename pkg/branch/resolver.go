// Package branch determines and validates branch names for a repository.
package branch

import (
	"github.com/lerenn/wtm/pkg/git"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=resolver.go -destination=mocks/resolver.gen.go -package=mocks

// preferredBranches is the fixed preference order used when the remote does
// not advertise a default branch.
var preferredBranches = []string{"main", "master", "develop", "dev"}

// Resolver determines the main branch of a freshly cloned bare store.
type Resolver interface {
	// DefaultBranch resolves the main branch name. A non-empty supplied
	// value (e.g. from a forge lookup) takes precedence over everything
	// the repository reports.
	DefaultBranch(bareStore, remoteName, supplied string) (string, error)
}

type realResolver struct {
	git git.Git
}

// NewResolver creates a new Resolver instance.
func NewResolver(git git.Git) Resolver {
	return &realResolver{git: git}
}

// DefaultBranch resolves the main branch name with the following precedence:
// the supplied value, the remote's symbolic HEAD, the first remote branch
// matching the preference list, then the first remote branch reported.
func (r *realResolver) DefaultBranch(bareStore, remoteName, supplied string) (string, error) {
	if supplied != "" {
		return supplied, nil
	}

	if name, err := r.git.DefaultRemoteBranch(bareStore, remoteName); err == nil && name != "" {
		return name, nil
	}

	branches, err := r.git.ListRemoteBranches(bareStore, remoteName)
	if err != nil {
		return "", err
	}
	if len(branches) == 0 {
		return "", ErrNoBranchFound
	}

	for _, preferred := range preferredBranches {
		for _, name := range branches {
			if name == preferred {
				return name, nil
			}
		}
	}

	return branches[0], nil
}
