package wtm

// PruneOutcome is the result of removing one orphaned registration.
type PruneOutcome struct {
	// Path is the registered worktree path whose directory vanished.
	Path string

	// Branch is the branch the registration pointed at, if any.
	Branch string

	// Err is the removal failure, nil on success.
	Err error
}

// Prune removes registrations whose worktree directory no longer exists on
// disk. Each orphan is removed individually: a failure is recorded in its
// outcome and processing continues with the next one. Outcomes preserve
// listing order. Running Prune twice in a row yields an empty second result.
func (w *realWTM) Prune() ([]PruneOutcome, error) {
	layout, err := w.layout()
	if err != nil {
		return nil, err
	}

	records, err := w.deps.Registry.List(layout.BareStore)
	if err != nil {
		return nil, err
	}

	var outcomes []PruneOutcome
	for _, record := range records {
		if record.Exists {
			continue
		}

		w.VerbosePrint("Pruning orphaned worktree %s", record.Path)

		// The directory is gone, so git needs --force to drop the entry.
		removeErr := w.deps.Git.RemoveWorktree(layout.BareStore, record.Path, true)
		if removeErr != nil {
			w.deps.Logger.Errorf("failed to prune %s: %v", record.Path, removeErr)
		}

		outcomes = append(outcomes, PruneOutcome{
			Path:   record.Path,
			Branch: record.Branch,
			Err:    removeErr,
		})
	}

	return outcomes, nil
}
