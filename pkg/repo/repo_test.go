//go:build unit

package repo

import (
	"errors"
	"testing"

	fsmocks "github.com/lerenn/wtm/pkg/fs/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLocate_BareStoreInWorkDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().IsDir("/repos/example/.bare").Return(true, nil)

	locator := NewLocator(mockFS)
	layout, err := locator.Locate("/repos/example")
	assert.NoError(t, err)
	assert.Equal(t, "/repos/example", layout.Root)
	assert.Equal(t, "/repos/example/.bare", layout.BareStore)
}

func TestLocate_BareStoreInParent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Invoked from inside a worktree: the bare store lives one level up.
	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().IsDir("/repos/example/main/.bare").Return(false, nil)
	mockFS.EXPECT().IsDir("/repos/example/.bare").Return(true, nil)

	locator := NewLocator(mockFS)
	layout, err := locator.Locate("/repos/example/main")
	assert.NoError(t, err)
	assert.Equal(t, "/repos/example", layout.Root)
	assert.Equal(t, "/repos/example/.bare", layout.BareStore)
}

func TestLocate_BareStoreTwoLevelsUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The lookup stops after one parent level: a bare store at depth 2 is
	// deliberately not found.
	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().IsDir("/repos/example/main/sub/.bare").Return(false, nil)
	mockFS.EXPECT().IsDir("/repos/example/main/.bare").Return(false, nil)

	locator := NewLocator(mockFS)
	_, err := locator.Locate("/repos/example/main/sub")
	assert.ErrorIs(t, err, ErrNotManagedRepository)
}

func TestLocate_BareStoreIsFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A .bare entry that is not a directory does not qualify.
	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().IsDir("/repos/example/.bare").Return(false, errors.New("not a directory"))
	mockFS.EXPECT().IsDir("/repos/.bare").Return(false, errors.New("no such file"))

	locator := NewLocator(mockFS)
	_, err := locator.Locate("/repos/example")
	assert.ErrorIs(t, err, ErrNotManagedRepository)
}
