package main

import (
	"github.com/spf13/cobra"
)

func createCloneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clone <repository>",
		Short: "Clone a repository into a bare store with a worktree for its default branch",
		Long: `Clone a repository into <name>/.bare and create a worktree for its default
branch at <name>/<branch>. An empty post-hook.json is written next to the
bare store.

The argument is a clone URL or an owner/name shorthand resolved via the
GitHub API (GITHUB_TOKEN is honored for private repositories).

There is no rollback on failure: a partially created directory is left on
disk for inspection.

Examples:
  wtm clone https://github.com/lerenn/example.git
  wtm clone git@github.com:lerenn/example.git
  wtm clone lerenn/example`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			manager, err := newWTM()
			if err != nil {
				return err
			}

			return manager.Clone(args[0])
		},
	}
}
