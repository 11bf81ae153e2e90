package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// RemoteBranchExists checks if a branch exists as a remote-tracking branch.
func (g *realGit) RemoteBranchExists(repoPath, remoteName, branch string) (bool, error) {
	remoteRef := remoteName + "/" + branch
	cmd := exec.Command("git", "branch", "-r", "--list", remoteRef)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return false, fmt.Errorf("git branch -r --list failed: %w (command: git branch -r --list %s, output: %s)",
			err, remoteRef, string(output))
	}
	return strings.TrimSpace(string(output)) != "", nil
}
