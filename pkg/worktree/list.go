package worktree

import (
	"fmt"
	"strings"
)

// List returns the enriched records for the given bare store, excluding the
// bare store entry itself.
func (r *realRegistry) List(bareStore string) ([]Record, error) {
	raw, err := r.git.WorktreeList(bareStore)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListFailed, err)
	}

	parsed, err := ParsePorcelain(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListFailed, err)
	}

	var records []Record
	for _, record := range parsed {
		if record.Bare {
			continue
		}
		r.enrich(&record)
		records = append(records, record)
	}

	return records, nil
}

// enrich fills in existence, dirty state and upstream delta for one record.
// Status and upstream queries are best-effort: a failing query degrades to
// clean / no-upstream instead of aborting the listing.
func (r *realRegistry) enrich(record *Record) {
	// Only a confirmed missing directory marks a record orphaned: prune
	// force-removes orphans, so a transient stat failure must not count.
	exists, err := r.fs.Exists(record.Path)
	record.Exists = exists || err != nil
	if !record.Exists {
		return
	}

	if status, err := r.git.StatusPorcelain(record.Path); err == nil {
		record.DirtyFiles = countStatusLines(status)
	}

	if ahead, behind, err := r.git.AheadBehind(record.Path); err == nil {
		record.HasUpstream = true
		record.Ahead = ahead
		record.Behind = behind
	}
}

// countStatusLines counts the non-empty lines of porcelain status output,
// one per modified or untracked path.
func countStatusLines(status string) int {
	count := 0
	for _, line := range strings.Split(status, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
