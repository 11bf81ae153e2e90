// Package forge resolves repository shorthand references against hosting services.
package forge

import (
	"fmt"
	"regexp"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// RepoInfo describes a repository as reported by a forge.
type RepoInfo struct {
	Owner         string
	Name          string
	CloneURL      string
	DefaultBranch string
}

// Reference is a parsed owner/name shorthand.
type Reference struct {
	Owner string
	Name  string
}

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge.
	Name() string

	// ResolveRepository looks up a repository by owner/name shorthand and
	// returns its clone URL and default branch.
	ResolveRepository(shorthand string) (*RepoInfo, error)
}

var shorthandRe = regexp.MustCompile(`^([A-Za-z0-9][A-Za-z0-9-]*)/([A-Za-z0-9._-]+)$`)

// IsShorthand reports whether the argument looks like an owner/name
// reference rather than a clone URL.
func IsShorthand(arg string) bool {
	return shorthandRe.MatchString(arg)
}

// ParseShorthand parses an owner/name reference.
func ParseShorthand(shorthand string) (Reference, error) {
	matches := shorthandRe.FindStringSubmatch(shorthand)
	if matches == nil {
		return Reference{}, fmt.Errorf("%w: %s (expected <owner>/<name>)", ErrInvalidRepoFormat, shorthand)
	}
	return Reference{Owner: matches[1], Name: matches[2]}, nil
}
