// Package dependencies provides a centralized dependency container for the WTM application.
// This package follows Go idioms for dependency injection by grouping related dependencies
// together and providing a fluent API for configuration.
package dependencies

import (
	"errors"

	"github.com/lerenn/wtm/pkg/branch"
	"github.com/lerenn/wtm/pkg/config"
	"github.com/lerenn/wtm/pkg/forge"
	"github.com/lerenn/wtm/pkg/fs"
	"github.com/lerenn/wtm/pkg/git"
	"github.com/lerenn/wtm/pkg/hooks"
	"github.com/lerenn/wtm/pkg/logger"
	"github.com/lerenn/wtm/pkg/repo"
	"github.com/lerenn/wtm/pkg/worktree"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing           = errors.New("fs dependency is required but not set")
	ErrGitMissing          = errors.New("git dependency is required but not set")
	ErrConfigMissing       = errors.New("config dependency is required but not set")
	ErrLoggerMissing       = errors.New("logger dependency is required but not set")
	ErrLocatorMissing      = errors.New("locator dependency is required but not set")
	ErrRegistryMissing     = errors.New("registry dependency is required but not set")
	ErrResolverMissing     = errors.New("resolver dependency is required but not set")
	ErrForgeMissing        = errors.New("forge dependency is required but not set")
	ErrHookExecutorMissing = errors.New("hook executor dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS           fs.FS
	Git          git.Git
	Config       *config.Config
	Logger       logger.Logger
	Locator      repo.Locator
	Registry     worktree.Registry
	Resolver     branch.Resolver
	Forge        forge.Forge
	HookExecutor hooks.Executor
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	filesystem := fs.NewFS()
	gitClient := git.NewGit()

	return &Dependencies{
		FS:           filesystem,
		Git:          gitClient,
		Config:       config.NewManager().DefaultConfig(),
		Logger:       logger.NewNoopLogger(),
		Locator:      repo.NewLocator(filesystem),
		Registry:     worktree.NewRegistry(worktree.NewRegistryParams{FS: filesystem, Git: gitClient}),
		Resolver:     branch.NewResolver(gitClient),
		Forge:        forge.NewGitHub(),
		HookExecutor: hooks.NewExecutor(),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the configuration and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg *config.Config) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithLocator sets the repository locator and returns the instance for chaining.
func (d *Dependencies) WithLocator(locator repo.Locator) *Dependencies {
	d.Locator = locator
	return d
}

// WithRegistry sets the worktree registry and returns the instance for chaining.
func (d *Dependencies) WithRegistry(registry worktree.Registry) *Dependencies {
	d.Registry = registry
	return d
}

// WithResolver sets the branch resolver and returns the instance for chaining.
func (d *Dependencies) WithResolver(resolver branch.Resolver) *Dependencies {
	d.Resolver = resolver
	return d
}

// WithForge sets the forge and returns the instance for chaining.
func (d *Dependencies) WithForge(forge forge.Forge) *Dependencies {
	d.Forge = forge
	return d
}

// WithHookExecutor sets the hook executor and returns the instance for chaining.
func (d *Dependencies) WithHookExecutor(executor hooks.Executor) *Dependencies {
	d.HookExecutor = executor
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	// Config is a concrete pointer, not an interface, so it is checked directly.
	if d.Config == nil {
		return ErrConfigMissing
	}

	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Locator, ErrLocatorMissing},
		{d.Registry, ErrRegistryMissing},
		{d.Resolver, ErrResolverMissing},
		{d.Forge, ErrForgeMissing},
		{d.HookExecutor, ErrHookExecutorMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
