// Package wtm provides the worktree-manager orchestration logic behind every
// CLI command: layout discovery, worktree creation and removal, listing,
// pruning and synchronization.
package wtm

import (
	"fmt"
	"os"

	"github.com/lerenn/wtm/pkg/dependencies"
	"github.com/lerenn/wtm/pkg/hooks"
	"github.com/lerenn/wtm/pkg/logger"
	"github.com/lerenn/wtm/pkg/repo"
	"github.com/lerenn/wtm/pkg/worktree"
)

// WTM interface provides worktree management functionality.
type WTM interface {
	// Clone clones a repository into a bare store and creates the first worktree.
	Clone(repoArg string) error
	// Branch creates a new branch and a worktree for it.
	Branch(name string) error
	// Add creates a worktree for an existing branch.
	Add(name string) error
	// Remove removes a worktree and optionally its branch.
	Remove(name string, opts RemoveOpts) error
	// List returns the enriched records of all non-bare worktrees.
	List() ([]worktree.Record, error)
	// Prune removes registrations whose directory vanished from disk.
	Prune() ([]PruneOutcome, error)
	// Sync fetches once and fast-forwards every clean worktree.
	Sync() ([]SyncOutcome, error)
	// Switch returns the absolute path of the worktree for a branch.
	Switch(name string) (string, error)
	// SetLogger sets the logger for this WTM instance.
	SetLogger(logger logger.Logger)
}

// NewWTMParams contains parameters for creating a new WTM instance.
type NewWTMParams struct {
	Dependencies *dependencies.Dependencies

	// WorkDir is the directory commands are resolved from. Defaults to the
	// process working directory.
	WorkDir string
}

type realWTM struct {
	deps    *dependencies.Dependencies
	workDir string
}

// NewWTM creates a new WTM instance.
func NewWTM(params NewWTMParams) (WTM, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	workDir := params.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		workDir = wd
	}

	return &realWTM{
		deps:    deps,
		workDir: workDir,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (w *realWTM) VerbosePrint(msg string, args ...interface{}) {
	if w.deps.Logger != nil {
		w.deps.Logger.Logf(fmt.Sprintf(msg, args...))
	}
}

// SetLogger sets the logger for this WTM instance.
func (w *realWTM) SetLogger(logger logger.Logger) {
	w.deps.Logger = logger
}

// layout resolves the repository layout for the working directory.
func (w *realWTM) layout() (repo.Layout, error) {
	return w.deps.Locator.Locate(w.workDir)
}

// runPostHooks executes the repository's post-creation hooks in the new
// worktree. Hook failures are advisory: they are reported but never change
// the outcome of the command that created the worktree.
func (w *realWTM) runPostHooks(repoRoot, worktreePath string) {
	cfg, err := hooks.LoadConfig(w.deps.FS, repoRoot)
	if err != nil {
		w.deps.Logger.Errorf("ignoring post-hook configuration: %v", err)
		return
	}
	if len(cfg.Hooks) == 0 {
		return
	}

	w.VerbosePrint("Running %d post-creation hook(s) in %s", len(cfg.Hooks), worktreePath)
	if err := w.deps.HookExecutor.Run(worktreePath, cfg.Hooks); err != nil {
		w.deps.Logger.Errorf("post-hook failed (worktree kept): %v", err)
	}
}
