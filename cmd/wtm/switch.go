package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch <name>",
		Short: "Print the absolute path of a worktree",
		Long: `Print the absolute path of the worktree for the given branch, exactly one
line and nothing else, so shells can cd into it:

  cd "$(wtm switch feature-x)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			manager, err := newWTM()
			if err != nil {
				return err
			}

			path, err := manager.Switch(args[0])
			if err != nil {
				return err
			}

			fmt.Println(path)
			return nil
		},
	}
}
