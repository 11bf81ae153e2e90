package hooks

import (
	"fmt"
	"os"
	"os/exec"
)

// Executor runs hook commands in a worktree directory.
type Executor interface {
	// Run executes the hooks in list order with inherited stdio, halting
	// at the first non-zero exit.
	Run(worktreePath string, hooks []string) error
}

type realExecutor struct {
	// No fields needed for basic command execution
}

// NewExecutor creates a new Executor instance.
func NewExecutor() Executor {
	return &realExecutor{}
}

// Run executes each hook via `sh -c` in the worktree directory. Hook output
// goes straight to the user's terminal.
func (e *realExecutor) Run(worktreePath string, hooks []string) error {
	for _, hook := range hooks {
		cmd := exec.Command("sh", "-c", hook)
		cmd.Dir = worktreePath
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%w: %q: %w", ErrHookFailed, hook, err)
		}
	}
	return nil
}
