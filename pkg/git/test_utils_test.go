//go:build integration

package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// setupTestRepo creates a temporary git repository with one initial commit.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	runGitCommand(t, tmpDir, "init")
	runGitCommand(t, tmpDir, "config", "user.name", "Test User")
	runGitCommand(t, tmpDir, "config", "user.email", "test@example.com")

	if err := os.WriteFile(filepath.Join(tmpDir, "README.md"), []byte("# Test Repository"), 0644); err != nil {
		t.Fatalf("Failed to create README file: %v", err)
	}
	runGitCommand(t, tmpDir, "add", "README.md")
	runGitCommand(t, tmpDir, "commit", "-m", "Initial commit")

	return tmpDir
}

func runGitCommand(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v (output: %s)", args, err, output)
	}
}
