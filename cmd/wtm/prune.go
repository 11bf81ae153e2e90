package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createPruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove registrations whose worktree directory vanished",
		Long: `Remove every worktree registration whose directory no longer exists on
disk. Orphans are removed one by one; a failure on one entry does not stop
the others.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			manager, err := newWTM()
			if err != nil {
				return err
			}

			outcomes, err := manager.Prune()
			if err != nil {
				return err
			}

			if len(outcomes) == 0 {
				fmt.Println("No orphaned worktrees found.")
				return nil
			}

			removed, failed := 0, 0
			for _, outcome := range outcomes {
				if outcome.Err != nil {
					failed++
					continue
				}
				removed++
				fmt.Printf("Pruned %s\n", outcome.Path)
			}

			if failed > 0 {
				return fmt.Errorf("pruned %d worktree(s), %d failed", removed, failed)
			}

			fmt.Printf("Pruned %d worktree(s)\n", removed)
			return nil
		},
	}
}
