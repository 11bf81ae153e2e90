//go:build unit

package wtm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemove(t *testing.T) {
	w, m := newTestWTM(t)

	m.expectLocate()
	m.fs.EXPECT().Exists("/work/repo/feature-x").Return(true, nil)
	m.git.EXPECT().RemoveWorktree("/work/repo/.bare", "/work/repo/feature-x", false).Return(nil)

	require.NoError(t, w.Remove("feature-x", RemoveOpts{}))
}

func TestRemove_WithBranchDeletion(t *testing.T) {
	w, m := newTestWTM(t)

	m.expectLocate()
	m.fs.EXPECT().Exists("/work/repo/feature-x").Return(true, nil)
	m.git.EXPECT().RemoveWorktree("/work/repo/.bare", "/work/repo/feature-x", false).Return(nil)
	m.git.EXPECT().DeleteBranch("/work/repo/.bare", "feature-x", true).Return(nil)

	require.NoError(t, w.Remove("feature-x", RemoveOpts{DeleteBranch: true}))
}

func TestRemove_NotFound(t *testing.T) {
	w, m := newTestWTM(t)

	m.expectLocate()
	m.fs.EXPECT().Exists("/work/repo/ghost").Return(false, nil)

	err := w.Remove("ghost", RemoveOpts{})
	assert.ErrorIs(t, err, ErrWorktreeNotFound)
}

func TestRemove_BranchDeletionFailureIsIndependent(t *testing.T) {
	w, m := newTestWTM(t)

	deleteErr := errors.New("git branch failed: branch 'feature-x' checked out elsewhere")
	m.expectLocate()
	m.fs.EXPECT().Exists("/work/repo/feature-x").Return(true, nil)

	// The worktree removal went through before the branch deletion failed.
	m.git.EXPECT().RemoveWorktree("/work/repo/.bare", "/work/repo/feature-x", false).Return(nil)
	m.git.EXPECT().DeleteBranch("/work/repo/.bare", "feature-x", true).Return(deleteErr)

	err := w.Remove("feature-x", RemoveOpts{DeleteBranch: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, deleteErr)
	assert.Contains(t, err.Error(), "worktree removed")
}

func TestRemove_WorktreeRemovalFailureSkipsBranchDeletion(t *testing.T) {
	w, m := newTestWTM(t)

	removeErr := errors.New("git worktree failed: contains modified or untracked files")
	m.expectLocate()
	m.fs.EXPECT().Exists("/work/repo/feature-x").Return(true, nil)
	m.git.EXPECT().RemoveWorktree("/work/repo/.bare", "/work/repo/feature-x", false).Return(removeErr)

	err := w.Remove("feature-x", RemoveOpts{DeleteBranch: true})
	assert.ErrorIs(t, err, removeErr)
}
