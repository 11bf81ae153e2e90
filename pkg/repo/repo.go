// Package repo locates the bare store and repository root for a command invocation.
package repo

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/wtm/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=repo.go -destination=mocks/repo.gen.go -package=mocks

// BareStoreDirName is the conventional name of the shared bare object store.
const BareStoreDirName = ".bare"

// Layout identifies a managed repository by its root directory and bare store path.
// It is computed fresh on every command invocation and never persisted.
type Layout struct {
	// Root is the repository root directory containing the bare store and worktrees.
	Root string

	// BareStore is the path of the bare object store, <Root>/.bare.
	BareStore string
}

// Locator finds the repository layout from a working directory.
type Locator interface {
	// Locate returns the layout for the repository managing the given directory.
	Locate(workDir string) (Layout, error)
}

type realLocator struct {
	fs fs.FS
}

// NewLocator creates a new Locator instance.
func NewLocator(fs fs.FS) Locator {
	return &realLocator{fs: fs}
}

// Locate checks the working directory first, then exactly one level up. The
// single-level rule supports running commands from inside a worktree without
// turning the lookup into a recursive search.
func (l *realLocator) Locate(workDir string) (Layout, error) {
	absDir, err := filepath.Abs(workDir)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	candidates := []string{absDir, filepath.Dir(absDir)}
	for _, root := range candidates {
		bareStore := filepath.Join(root, BareStoreDirName)
		isDir, err := l.fs.IsDir(bareStore)
		if err != nil || !isDir {
			continue
		}
		return Layout{Root: root, BareStore: bareStore}, nil
	}

	return Layout{}, fmt.Errorf("%w: no %s directory in %s or its parent",
		ErrNotManagedRepository, BareStoreDirName, absDir)
}
