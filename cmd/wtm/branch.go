package main

import (
	"github.com/spf13/cobra"
)

func createBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branch <name>",
		Short: "Create a new branch and a worktree for it",
		Long: `Create a new branch from the bare store's HEAD and check it out in a new
worktree at <root>/<name>. Post-creation hooks from post-hook.json run in
the new worktree.

Examples:
  wtm branch feature-x`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			manager, err := newWTM()
			if err != nil {
				return err
			}

			return manager.Branch(args[0])
		},
	}
}
