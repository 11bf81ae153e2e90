// Package worktree provides the in-memory view of a repository's worktrees.
package worktree

import (
	"github.com/lerenn/wtm/pkg/fs"
	"github.com/lerenn/wtm/pkg/git"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=worktree.go -destination=mocks/worktree.gen.go -package=mocks

// Record is one entry from the worktree list, enriched with on-disk and
// upstream state. Records are rebuilt from live git output on every
// invocation and never cached.
type Record struct {
	// Path is the absolute filesystem path of the worktree.
	Path string

	// Branch is the branch name checked out in the worktree. Empty when
	// Detached or Bare is set.
	Branch string

	// Detached marks a worktree without an associated branch.
	Detached bool

	// Bare marks the bare store entry itself. Bare records are excluded
	// from all listing, sync and prune operations.
	Bare bool

	// Exists reports whether the worktree directory is still on disk. A
	// registered worktree whose directory was deleted externally is orphaned.
	Exists bool

	// DirtyFiles is the count of modified or untracked paths.
	DirtyFiles int

	// HasUpstream reports whether ahead/behind counts could be computed.
	HasUpstream bool

	// Ahead and Behind are commit counts relative to the configured upstream.
	Ahead  int
	Behind int
}

// Dirty reports whether the worktree has any uncommitted change.
func (r Record) Dirty() bool {
	return r.DirtyFiles > 0
}

// Registry builds the enriched view of all non-bare worktrees of a repository.
type Registry interface {
	// List returns the enriched records for the given bare store, in the
	// order git reports them, excluding the bare store entry.
	List(bareStore string) ([]Record, error)
}

// NewRegistryParams contains the dependencies for NewRegistry.
type NewRegistryParams struct {
	FS  fs.FS
	Git git.Git
}

type realRegistry struct {
	fs  fs.FS
	git git.Git
}

// NewRegistry creates a new Registry instance.
func NewRegistry(params NewRegistryParams) Registry {
	return &realRegistry{
		fs:  params.FS,
		git: params.Git,
	}
}
