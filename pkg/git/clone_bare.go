package git

import (
	"fmt"
	"os/exec"
)

// CloneBare clones a repository as a bare store at the target path.
func (g *realGit) CloneBare(repoURL, targetPath string) error {
	cmd := exec.Command("git", "clone", "--bare", repoURL, targetPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git clone failed: %w (command: git clone --bare %s %s, output: %s)",
			err, repoURL, targetPath, string(output))
	}
	return nil
}
