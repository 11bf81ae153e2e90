package main

import (
	"fmt"
	"strings"

	"github.com/lerenn/wtm/pkg/worktree"
	"github.com/spf13/cobra"
)

func createListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List worktrees with dirty, sync and orphan markers",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			manager, err := newWTM()
			if err != nil {
				return err
			}

			records, err := manager.List()
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Println("No worktrees found.")
				return nil
			}

			for _, record := range records {
				fmt.Println(formatRecord(record))
			}
			return nil
		},
	}
}

// formatRecord renders one worktree line: branch, path, then state markers.
func formatRecord(record worktree.Record) string {
	name := record.Branch
	if record.Detached {
		name = "(detached)"
	}

	var markers []string
	if !record.Exists {
		markers = append(markers, "orphaned")
	}
	if record.Dirty() {
		markers = append(markers, fmt.Sprintf("dirty:%d", record.DirtyFiles))
	}
	if record.HasUpstream {
		if record.Ahead > 0 {
			markers = append(markers, fmt.Sprintf("ahead:%d", record.Ahead))
		}
		if record.Behind > 0 {
			markers = append(markers, fmt.Sprintf("behind:%d", record.Behind))
		}
	}

	line := fmt.Sprintf("%-24s %s", name, record.Path)
	if len(markers) > 0 {
		line += "  [" + strings.Join(markers, ", ") + "]"
	}
	return line
}
