package wtm

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/wtm/pkg/forge"
	"github.com/lerenn/wtm/pkg/hooks"
	"github.com/lerenn/wtm/pkg/repo"
)

// Clone clones a repository into a fresh bare store and creates a worktree
// for its default branch. The argument is either a clone URL or an
// owner/name shorthand resolved through the configured forge.
//
// There is no rollback on mid-flight failure: the error is reported verbatim
// and the partial directory is left on disk for inspection.
func (w *realWTM) Clone(repoArg string) error {
	w.VerbosePrint("Starting repository clone: %s", repoArg)

	cloneURL, repoName, forgeBranch, err := w.resolveCloneSource(repoArg)
	if err != nil {
		return err
	}

	w.VerbosePrint("Clone URL: %s", cloneURL)

	targetRoot := filepath.Join(w.workDir, repoName)
	exists, err := w.deps.FS.Exists(targetRoot)
	if err != nil {
		return fmt.Errorf("failed to check target directory: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrTargetExists, targetRoot)
	}

	bareStore := filepath.Join(targetRoot, repo.BareStoreDirName)
	if err := w.deps.Git.CloneBare(cloneURL, bareStore); err != nil {
		return err
	}

	// Bare clones carry no fetch refspec, so remote-tracking refs would
	// never materialize and later `add` calls could not see remote branches.
	remote := w.deps.Config.Remote
	refspecKey := fmt.Sprintf("remote.%s.fetch", remote)
	refspecValue := fmt.Sprintf("+refs/heads/*:refs/remotes/%s/*", remote)
	if err := w.deps.Git.ConfigSet(bareStore, refspecKey, refspecValue); err != nil {
		return err
	}
	if err := w.deps.Git.Fetch(bareStore, remote); err != nil {
		return err
	}

	branchName, err := w.deps.Resolver.DefaultBranch(bareStore, remote, forgeBranch)
	if err != nil {
		return err
	}

	w.VerbosePrint("Default branch: %s", branchName)

	worktreePath := filepath.Join(targetRoot, branchName)
	if err := w.deps.Git.AddWorktree(bareStore, worktreePath, branchName); err != nil {
		return err
	}

	if err := w.deps.FS.CreateFileWithContent(
		hooks.FilePath(targetRoot), hooks.InitialContent(), 0644); err != nil {
		return fmt.Errorf("failed to create hook file: %w", err)
	}

	w.runPostHooks(targetRoot, worktreePath)

	w.deps.Logger.Logf("Cloned %s: worktree for %s at %s (bare store: %s)",
		repoName, branchName, worktreePath, bareStore)
	return nil
}

// resolveCloneSource turns the clone argument into a clone URL, a target
// directory name and, when the forge reports one, a default branch.
func (w *realWTM) resolveCloneSource(repoArg string) (cloneURL, repoName, defaultBranch string, err error) {
	if isCloneURL(repoArg) {
		return repoArg, repoNameFromURL(repoArg), "", nil
	}

	ref, err := forge.ParseShorthand(repoArg)
	if err != nil {
		return "", "", "", err
	}

	info, err := w.deps.Forge.ResolveRepository(repoArg)
	if err != nil {
		// The lookup is a convenience: fall back to the conventional URL
		// and let the resolver chain pick the default branch.
		w.deps.Logger.Errorf("%s lookup failed, using conventional clone URL: %v",
			w.deps.Forge.Name(), err)
		url := fmt.Sprintf("https://github.com/%s/%s.git", ref.Owner, ref.Name)
		return url, ref.Name, "", nil
	}

	return info.CloneURL, info.Name, info.DefaultBranch, nil
}

// isCloneURL reports whether the argument is a clone URL rather than an
// owner/name shorthand. Covers https://, git://, ssh:// and scp-like
// git@host:path forms.
func isCloneURL(arg string) bool {
	return strings.Contains(arg, "://") || strings.Contains(arg, "@")
}

// repoNameFromURL extracts the repository name from a clone URL.
func repoNameFromURL(repoURL string) string {
	name := strings.TrimSuffix(repoURL, "/")
	name = filepath.Base(name)
	if idx := strings.LastIndex(name, ":"); idx >= 0 {
		name = name[idx+1:]
	}
	return strings.TrimSuffix(name, ".git")
}
