package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// DefaultRemoteBranch returns the branch the remote HEAD points at.
func (g *realGit) DefaultRemoteBranch(repoPath, remoteName string) (string, error) {
	cmd := exec.Command("git", "ls-remote", "--symref", remoteName, "HEAD")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git ls-remote failed: %w (command: git ls-remote --symref %s HEAD, output: %s)",
			err, remoteName, string(output))
	}

	// Output format: "ref: refs/heads/main\tHEAD"
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "ref:") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) >= 2 && strings.HasPrefix(parts[1], "refs/heads/") {
			return strings.TrimPrefix(parts[1], "refs/heads/"), nil
		}
	}

	return "", fmt.Errorf("could not determine default branch for remote: %s", remoteName)
}
