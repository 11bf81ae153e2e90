package main

import (
	"fmt"

	"github.com/lerenn/wtm/pkg/wtm"
	"github.com/spf13/cobra"
)

func createSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Fetch once and fast-forward every clean worktree",
		Long: `Fetch from the configured remote, then fast-forward each worktree in
listing order. Worktrees with uncommitted changes are skipped and never
touched; a failing pull is reported and the rest of the batch continues.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			manager, err := newWTM()
			if err != nil {
				return err
			}

			outcomes, err := manager.Sync()
			if err != nil {
				return err
			}

			failed := 0
			for _, outcome := range outcomes {
				label := outcome.Branch
				if label == "" {
					label = outcome.Path
				}

				switch outcome.Status {
				case wtm.SyncUpdated:
					fmt.Printf("updated  %s\n", label)
				case wtm.SyncSkipped:
					fmt.Printf("skipped  %s (%s)\n", label, outcome.Detail)
				case wtm.SyncFailed:
					failed++
					fmt.Printf("failed   %s: %s\n", label, outcome.Detail)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d worktree(s) failed to sync", failed)
			}
			return nil
		},
	}
}
