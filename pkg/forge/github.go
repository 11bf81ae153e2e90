package forge

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/go-github/v62/github"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
	// lookupTimeout bounds the repository metadata request.
	lookupTimeout = 10 * time.Second
)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client *github.Client
}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub() *GitHub {
	var client *github.Client

	// Add authentication if available
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		client = github.NewTokenClient(context.Background(), token)
	} else {
		client = github.NewClient(nil)
	}

	return &GitHub{client: client}
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// ResolveRepository looks up a repository by owner/name shorthand and returns
// its clone URL and default branch.
func (g *GitHub) ResolveRepository(shorthand string) (*RepoInfo, error) {
	ref, err := ParseShorthand(shorthand)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	repository, resp, err := g.client.Repositories.Get(ctx, ref.Owner, ref.Name)
	if err != nil {
		return nil, g.handleGitHubError(err, resp, shorthand)
	}

	return &RepoInfo{
		Owner:         ref.Owner,
		Name:          ref.Name,
		CloneURL:      repository.GetCloneURL(),
		DefaultBranch: repository.GetDefaultBranch(),
	}, nil
}

// handleGitHubError maps GitHub API errors to forge error types.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, shorthand string) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrRepositoryNotFound, shorthand)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check GITHUB_TOKEN environment variable", ErrUnauthorized)
		case http.StatusForbidden:
			// Check if it's rate limiting
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden", ErrUnauthorized)
		}
	}
	return fmt.Errorf("failed to resolve repository %s: %w", shorthand, err)
}
