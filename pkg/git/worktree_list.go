package git

import (
	"fmt"
	"os/exec"
)

// WorktreeList returns the raw porcelain output of `git worktree list`.
func (g *realGit) WorktreeList(repoPath string) (string, error) {
	cmd := exec.Command("git", "worktree", "list", "--porcelain")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git worktree list failed: %w (command: git worktree list --porcelain, output: %s)",
			err, string(output))
	}
	return string(output), nil
}
