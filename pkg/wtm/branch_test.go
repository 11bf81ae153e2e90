//go:build unit

package wtm

import (
	"errors"
	"testing"

	"github.com/lerenn/wtm/pkg/branch"
	"github.com/lerenn/wtm/pkg/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranch(t *testing.T) {
	w, m := newTestWTM(t)

	m.expectLocate()
	m.fs.EXPECT().Exists("/work/repo/feature-x").Return(false, nil)
	m.git.EXPECT().CreateBranch("/work/repo/.bare", "feature-x").Return(nil)
	m.git.EXPECT().AddWorktree("/work/repo/.bare", "/work/repo/feature-x", "feature-x").Return(nil)
	m.expectNoHooks("/work/repo")

	require.NoError(t, w.Branch("feature-x"))
}

func TestBranch_InvalidName(t *testing.T) {
	w, _ := newTestWTM(t)

	err := w.Branch("")
	assert.ErrorIs(t, err, branch.ErrBranchNameEmpty)
}

func TestBranch_WorktreeExists(t *testing.T) {
	w, m := newTestWTM(t)

	m.expectLocate()
	m.fs.EXPECT().Exists("/work/repo/feature-x").Return(true, nil)

	err := w.Branch("feature-x")
	assert.ErrorIs(t, err, ErrWorktreeExists)
}

func TestBranch_OutsideManagedRepository(t *testing.T) {
	w, m := newTestWTM(t)

	m.locator.EXPECT().Locate("/work").
		Return(repo.Layout{}, repo.ErrNotManagedRepository)

	err := w.Branch("feature-x")
	assert.ErrorIs(t, err, repo.ErrNotManagedRepository)
}

func TestBranch_GitRefusalPropagated(t *testing.T) {
	w, m := newTestWTM(t)

	gitErr := errors.New("git branch failed: a branch named 'feature-x' already exists")
	m.expectLocate()
	m.fs.EXPECT().Exists("/work/repo/feature-x").Return(false, nil)
	m.git.EXPECT().CreateBranch("/work/repo/.bare", "feature-x").Return(gitErr)

	err := w.Branch("feature-x")
	assert.ErrorIs(t, err, gitErr)
}

func TestBranch_HookFailureIsAdvisory(t *testing.T) {
	w, m := newTestWTM(t)

	m.expectLocate()
	m.fs.EXPECT().Exists("/work/repo/feature-x").Return(false, nil)
	m.git.EXPECT().CreateBranch("/work/repo/.bare", "feature-x").Return(nil)
	m.git.EXPECT().AddWorktree("/work/repo/.bare", "/work/repo/feature-x", "feature-x").Return(nil)

	m.fs.EXPECT().Exists("/work/repo/post-hook.json").Return(true, nil)
	m.fs.EXPECT().ReadFile("/work/repo/post-hook.json").
		Return([]byte(`{"hooks":["make setup"]}`), nil)
	m.executor.EXPECT().Run("/work/repo/feature-x", []string{"make setup"}).
		Return(errors.New("exit status 2"))

	// The worktree was created: hook failure must not surface as an error.
	require.NoError(t, w.Branch("feature-x"))
}
