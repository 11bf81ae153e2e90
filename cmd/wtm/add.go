package main

import (
	"github.com/spf13/cobra"
)

func createAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a worktree for an existing branch",
		Long: `Create a worktree at <root>/<name> for an existing branch. A branch that
only exists on the remote gets a local tracking branch first.

Examples:
  wtm add feature-x`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			manager, err := newWTM()
			if err != nil {
				return err
			}

			return manager.Add(args[0])
		},
	}
}
