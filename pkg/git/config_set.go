package git

import (
	"fmt"
	"os/exec"
)

// ConfigSet executes `git config <key> <value>` in the specified repository.
func (g *realGit) ConfigSet(repoPath, key, value string) error {
	cmd := exec.Command("git", "config", key, value)
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git config failed: %w (command: git config %s %s, output: %s)",
			err, key, value, string(output))
	}
	return nil
}
