package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// PullFastForward performs a fast-forward-only pull in the given worktree.
func (g *realGit) PullFastForward(worktreePath string) (string, error) {
	cmd := exec.Command("git", "pull", "--ff-only")
	cmd.Dir = worktreePath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("git pull failed: %w (command: git pull --ff-only, output: %s)",
			err, strings.TrimSpace(string(output)))
	}
	return string(output), nil
}
