//go:build integration

package git

import (
	"testing"
)

func TestGit_CreateBranch(t *testing.T) {
	git := NewGit()
	repoPath := setupTestRepo(t)

	if err := git.CreateBranch(repoPath, "feature"); err != nil {
		t.Fatalf("Expected no error creating branch: %v", err)
	}

	exists, err := git.BranchExists(repoPath, "feature")
	if err != nil {
		t.Fatalf("Expected no error checking branch: %v", err)
	}
	if !exists {
		t.Error("Expected branch to exist after creation")
	}
}

func TestGit_CreateBranch_AlreadyExists(t *testing.T) {
	git := NewGit()
	repoPath := setupTestRepo(t)

	if err := git.CreateBranch(repoPath, "feature"); err != nil {
		t.Fatalf("Expected no error creating branch: %v", err)
	}

	// Creating the same branch again surfaces the git error
	if err := git.CreateBranch(repoPath, "feature"); err == nil {
		t.Error("Expected error creating existing branch")
	}
}

func TestGit_BranchExists_NotFound(t *testing.T) {
	git := NewGit()
	repoPath := setupTestRepo(t)

	exists, err := git.BranchExists(repoPath, "missing")
	if err != nil {
		t.Fatalf("Expected no error: %v", err)
	}
	if exists {
		t.Error("Expected branch not to exist")
	}
}

func TestGit_DeleteBranch(t *testing.T) {
	git := NewGit()
	repoPath := setupTestRepo(t)

	if err := git.CreateBranch(repoPath, "feature"); err != nil {
		t.Fatalf("Expected no error creating branch: %v", err)
	}
	if err := git.DeleteBranch(repoPath, "feature", true); err != nil {
		t.Fatalf("Expected no error deleting branch: %v", err)
	}

	exists, err := git.BranchExists(repoPath, "feature")
	if err != nil {
		t.Fatalf("Expected no error checking branch: %v", err)
	}
	if exists {
		t.Error("Expected branch to be deleted")
	}
}

func TestGit_DeleteBranch_NotFound(t *testing.T) {
	git := NewGit()
	repoPath := setupTestRepo(t)

	if err := git.DeleteBranch(repoPath, "missing", true); err == nil {
		t.Error("Expected error deleting missing branch")
	}
}
