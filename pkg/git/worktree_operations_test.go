//go:build integration

package git

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGit_AddWorktree(t *testing.T) {
	git := NewGit()
	repoPath := setupTestRepo(t)

	if err := git.CreateBranch(repoPath, "feature"); err != nil {
		t.Fatalf("Expected no error creating branch: %v", err)
	}

	worktreePath := filepath.Join(t.TempDir(), "feature")
	if err := git.AddWorktree(repoPath, worktreePath, "feature"); err != nil {
		t.Fatalf("Expected no error adding worktree: %v", err)
	}

	if _, err := os.Stat(worktreePath); err != nil {
		t.Errorf("Expected worktree directory to exist: %v", err)
	}

	raw, err := git.WorktreeList(repoPath)
	if err != nil {
		t.Fatalf("Expected no error listing worktrees: %v", err)
	}
	if !strings.Contains(raw, "branch refs/heads/feature") {
		t.Errorf("Expected worktree list to mention the feature branch, got: %s", raw)
	}
}

func TestGit_RemoveWorktree(t *testing.T) {
	git := NewGit()
	repoPath := setupTestRepo(t)

	if err := git.CreateBranch(repoPath, "feature"); err != nil {
		t.Fatalf("Expected no error creating branch: %v", err)
	}

	worktreePath := filepath.Join(t.TempDir(), "feature")
	if err := git.AddWorktree(repoPath, worktreePath, "feature"); err != nil {
		t.Fatalf("Expected no error adding worktree: %v", err)
	}

	if err := git.RemoveWorktree(repoPath, worktreePath, false); err != nil {
		t.Fatalf("Expected no error removing worktree: %v", err)
	}

	raw, err := git.WorktreeList(repoPath)
	if err != nil {
		t.Fatalf("Expected no error listing worktrees: %v", err)
	}
	if strings.Contains(raw, "refs/heads/feature") {
		t.Errorf("Expected worktree registration to be gone, got: %s", raw)
	}
}

func TestGit_WorktreeList_PorcelainFormat(t *testing.T) {
	git := NewGit()
	repoPath := setupTestRepo(t)

	raw, err := git.WorktreeList(repoPath)
	if err != nil {
		t.Fatalf("Expected no error listing worktrees: %v", err)
	}
	if !strings.HasPrefix(raw, "worktree ") {
		t.Errorf("Expected porcelain output to start with a worktree line, got: %s", raw)
	}
}

func TestGit_StatusPorcelain(t *testing.T) {
	git := NewGit()
	repoPath := setupTestRepo(t)

	// Clean tree
	output, err := git.StatusPorcelain(repoPath)
	if err != nil {
		t.Fatalf("Expected no error in clean repository: %v", err)
	}
	if strings.TrimSpace(output) != "" {
		t.Errorf("Expected empty status for clean tree, got: %s", output)
	}

	// One modified file
	if err := os.WriteFile(filepath.Join(repoPath, "README.md"), []byte("changed"), 0644); err != nil {
		t.Fatalf("Failed to modify file: %v", err)
	}
	output, err = git.StatusPorcelain(repoPath)
	if err != nil {
		t.Fatalf("Expected no error: %v", err)
	}
	if strings.TrimSpace(output) == "" {
		t.Error("Expected status output for dirty tree")
	}
}

func TestGit_AheadBehind_NoUpstream(t *testing.T) {
	git := NewGit()
	repoPath := setupTestRepo(t)

	_, _, err := git.AheadBehind(repoPath)
	if err == nil {
		t.Error("Expected error when no upstream is configured")
	}
}

func TestGit_CloneBare(t *testing.T) {
	git := NewGit()
	sourcePath := setupTestRepo(t)

	targetPath := filepath.Join(t.TempDir(), ".bare")
	if err := git.CloneBare(sourcePath, targetPath); err != nil {
		t.Fatalf("Expected no error cloning bare: %v", err)
	}

	if _, err := os.Stat(filepath.Join(targetPath, "HEAD")); err != nil {
		t.Errorf("Expected bare store to contain HEAD: %v", err)
	}
}
