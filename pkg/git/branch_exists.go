package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// BranchExists checks if a branch exists locally.
func (g *realGit) BranchExists(repoPath, branch string) (bool, error) {
	cmd := exec.Command("git", "branch", "--list", branch)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return false, fmt.Errorf("git branch --list failed: %w (command: git branch --list %s, output: %s)",
			err, branch, string(output))
	}
	return strings.TrimSpace(string(output)) != "", nil
}
