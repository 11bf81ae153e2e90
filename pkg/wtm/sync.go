package wtm

import "strings"

// SyncStatus classifies the result of synchronizing one worktree.
type SyncStatus string

// Sync outcome statuses.
const (
	SyncUpdated SyncStatus = "updated"
	SyncSkipped SyncStatus = "skipped"
	SyncFailed  SyncStatus = "failed"
)

// SyncOutcome is the per-worktree result of a Sync run.
type SyncOutcome struct {
	Path   string
	Branch string
	Status SyncStatus

	// Detail carries the skip reason, the git output for an update, or the
	// failure message.
	Detail string
}

// Sync fetches from the remote once, then fast-forwards every clean worktree
// in listing order. Dirty and orphaned worktrees are skipped, never touched.
// A failing pull is recorded in its outcome and the batch continues.
func (w *realWTM) Sync() ([]SyncOutcome, error) {
	layout, err := w.layout()
	if err != nil {
		return nil, err
	}

	if err := w.deps.Git.Fetch(layout.BareStore, w.deps.Config.Remote); err != nil {
		return nil, err
	}

	records, err := w.deps.Registry.List(layout.BareStore)
	if err != nil {
		return nil, err
	}

	outcomes := make([]SyncOutcome, 0, len(records))
	for _, record := range records {
		outcome := SyncOutcome{Path: record.Path, Branch: record.Branch}

		switch {
		case !record.Exists:
			outcome.Status = SyncSkipped
			outcome.Detail = "directory missing"
		case record.Dirty():
			outcome.Status = SyncSkipped
			outcome.Detail = "uncommitted changes"
		default:
			w.VerbosePrint("Fast-forwarding %s", record.Path)
			output, pullErr := w.deps.Git.PullFastForward(record.Path)
			if pullErr != nil {
				outcome.Status = SyncFailed
				outcome.Detail = pullErr.Error()
			} else {
				outcome.Status = SyncUpdated
				outcome.Detail = strings.TrimSpace(output)
			}
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}
