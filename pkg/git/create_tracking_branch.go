package git

import (
	"fmt"
	"os/exec"
)

// CreateTrackingBranch creates a local branch tracking its remote counterpart.
func (g *realGit) CreateTrackingBranch(repoPath, branch, remoteName string) error {
	remoteRef := remoteName + "/" + branch
	cmd := exec.Command("git", "branch", "--track", branch, remoteRef)
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git branch --track failed: %w (command: git branch --track %s %s, output: %s)",
			err, branch, remoteRef, string(output))
	}
	return nil
}
