package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// ListRemoteBranches lists remote-tracking branch names for a remote, without the remote prefix.
func (g *realGit) ListRemoteBranches(repoPath, remoteName string) ([]string, error) {
	cmd := exec.Command("git", "branch", "-r", "--format", "%(refname:short)")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git branch -r failed: %w (command: git branch -r, output: %s)",
			err, string(output))
	}

	prefix := remoteName + "/"
	var branches []string
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.HasPrefix(line, prefix) {
			continue
		}
		name := strings.TrimPrefix(line, prefix)
		// The symbolic HEAD entry is not a branch.
		if name == "HEAD" {
			continue
		}
		branches = append(branches, name)
	}
	return branches, nil
}
