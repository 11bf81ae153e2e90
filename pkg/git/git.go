package git

//go:generate go run go.uber.org/mock/mockgen@latest -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides Git command execution capabilities.
type Git interface {
	// CloneBare clones a repository as a bare store at the target path.
	CloneBare(repoURL, targetPath string) error

	// ConfigSet executes `git config <key> <value>` in the specified repository.
	ConfigSet(repoPath, key, value string) error

	// Fetch fetches from a specific remote.
	Fetch(repoPath, remoteName string) error

	// WorktreeList returns the raw porcelain output of `git worktree list`.
	WorktreeList(repoPath string) (string, error)

	// AddWorktree creates a new worktree for the specified branch.
	AddWorktree(repoPath, worktreePath, branch string) error

	// RemoveWorktree removes a worktree from Git's tracking.
	RemoveWorktree(repoPath, worktreePath string, force bool) error

	// CreateBranch creates a new branch from the current HEAD.
	CreateBranch(repoPath, branch string) error

	// CreateTrackingBranch creates a local branch tracking its remote counterpart.
	CreateTrackingBranch(repoPath, branch, remoteName string) error

	// DeleteBranch deletes a local branch.
	DeleteBranch(repoPath, branch string, force bool) error

	// BranchExists checks if a branch exists locally.
	BranchExists(repoPath, branch string) (bool, error)

	// RemoteBranchExists checks if a branch exists as a remote-tracking branch.
	RemoteBranchExists(repoPath, remoteName, branch string) (bool, error)

	// ListRemoteBranches lists remote-tracking branch names for a remote, without the remote prefix.
	ListRemoteBranches(repoPath, remoteName string) ([]string, error)

	// DefaultRemoteBranch returns the branch the remote HEAD points at.
	DefaultRemoteBranch(repoPath, remoteName string) (string, error)

	// StatusPorcelain returns the porcelain status output for a working tree.
	StatusPorcelain(worktreePath string) (string, error)

	// AheadBehind returns commit counts of HEAD relative to its upstream.
	AheadBehind(worktreePath string) (ahead, behind int, err error)

	// PullFastForward performs a fast-forward-only pull in the given worktree.
	PullFastForward(worktreePath string) (string, error)
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
