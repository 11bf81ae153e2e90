package wtm

import (
	"github.com/lerenn/wtm/pkg/worktree"
)

// List returns the enriched records of all non-bare worktrees, in the order
// git reports them.
func (w *realWTM) List() ([]worktree.Record, error) {
	layout, err := w.layout()
	if err != nil {
		return nil, err
	}

	return w.deps.Registry.List(layout.BareStore)
}
