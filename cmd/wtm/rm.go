package main

import (
	"github.com/lerenn/wtm/pkg/wtm"
	"github.com/spf13/cobra"
)

func createRmCmd() *cobra.Command {
	var deleteBranch bool

	rmCmd := &cobra.Command{
		Use:   "rm <name> [-D]",
		Short: "Remove a worktree, optionally deleting its branch",
		Long: `Remove the worktree at <root>/<name>. With -D the branch is force-deleted
afterwards; a branch-deletion failure never undoes the worktree removal.

Examples:
  wtm rm feature-x
  wtm rm feature-x -D`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			manager, err := newWTM()
			if err != nil {
				return err
			}

			return manager.Remove(args[0], wtm.RemoveOpts{DeleteBranch: deleteBranch})
		},
	}

	// Add flags
	rmCmd.Flags().BoolVarP(&deleteBranch, "delete-branch", "D", false,
		"Also force-delete the branch after removing the worktree")

	return rmCmd
}
