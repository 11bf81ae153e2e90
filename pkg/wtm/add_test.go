//go:build unit

package wtm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_LocalBranch(t *testing.T) {
	w, m := newTestWTM(t)

	m.expectLocate()
	m.fs.EXPECT().Exists("/work/repo/feature-x").Return(false, nil)
	m.git.EXPECT().BranchExists("/work/repo/.bare", "feature-x").Return(true, nil)
	m.git.EXPECT().AddWorktree("/work/repo/.bare", "/work/repo/feature-x", "feature-x").Return(nil)
	m.expectNoHooks("/work/repo")

	require.NoError(t, w.Add("feature-x"))
}

func TestAdd_RemoteOnlyBranch(t *testing.T) {
	w, m := newTestWTM(t)

	m.expectLocate()
	m.fs.EXPECT().Exists("/work/repo/feature-x").Return(false, nil)
	m.git.EXPECT().BranchExists("/work/repo/.bare", "feature-x").Return(false, nil)
	m.git.EXPECT().RemoteBranchExists("/work/repo/.bare", "origin", "feature-x").Return(true, nil)
	m.git.EXPECT().CreateTrackingBranch("/work/repo/.bare", "feature-x", "origin").Return(nil)
	m.git.EXPECT().AddWorktree("/work/repo/.bare", "/work/repo/feature-x", "feature-x").Return(nil)
	m.expectNoHooks("/work/repo")

	require.NoError(t, w.Add("feature-x"))
}

func TestAdd_BranchNotFound(t *testing.T) {
	w, m := newTestWTM(t)

	m.expectLocate()
	m.fs.EXPECT().Exists("/work/repo/ghost").Return(false, nil)
	m.git.EXPECT().BranchExists("/work/repo/.bare", "ghost").Return(false, nil)
	m.git.EXPECT().RemoteBranchExists("/work/repo/.bare", "origin", "ghost").Return(false, nil)

	err := w.Add("ghost")
	assert.ErrorIs(t, err, ErrBranchNotFound)
}

func TestAdd_WorktreeExists(t *testing.T) {
	w, m := newTestWTM(t)

	m.expectLocate()
	m.fs.EXPECT().Exists("/work/repo/feature-x").Return(true, nil)

	err := w.Add("feature-x")
	assert.ErrorIs(t, err, ErrWorktreeExists)
}
