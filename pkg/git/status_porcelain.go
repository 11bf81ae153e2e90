package git

import (
	"fmt"
	"os/exec"
)

// StatusPorcelain returns the porcelain status output for a working tree.
func (g *realGit) StatusPorcelain(worktreePath string) (string, error) {
	cmd := exec.Command("git", "status", "--porcelain")
	cmd.Dir = worktreePath

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git status failed: %w (command: git status --porcelain, output: %s)",
			err, string(output))
	}

	return string(output), nil
}
