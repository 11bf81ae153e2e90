package worktree

import (
	"fmt"
	"strings"
)

const (
	porcelainWorktreeKey = "worktree"
	porcelainBranchKey   = "branch"
	porcelainBareKey     = "bare"
	branchRefPrefix      = "refs/heads/"
)

// ParsePorcelain parses the raw output of `git worktree list --porcelain`
// into records, without existence, dirty or sync enrichment.
//
// Entries are separated by a blank line. Each entry is a sequence of
// `key value` lines; the bare store entry is flagged by a standalone `bare`
// line, and a missing branch line means the worktree is detached. Entries
// without a `worktree <path>` line are skipped.
func ParsePorcelain(raw string) ([]Record, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: empty output", ErrParse)
	}

	var records []Record
	for _, block := range strings.Split(raw, "\n\n") {
		record, ok := parseBlock(block)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no worktree entries in output", ErrParse)
	}

	return records, nil
}

// parseBlock parses a single porcelain entry. The second return value is
// false when the block carries no worktree line.
func parseBlock(block string) (Record, bool) {
	var record Record
	hasPath := false
	hasBranch := false

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, _ := strings.Cut(line, " ")
		switch key {
		case porcelainWorktreeKey:
			record.Path = value
			hasPath = value != ""
		case porcelainBranchKey:
			record.Branch = strings.TrimPrefix(value, branchRefPrefix)
			hasBranch = true
		case porcelainBareKey:
			record.Bare = true
		}
	}

	if !hasPath {
		return Record{}, false
	}
	if !hasBranch && !record.Bare {
		record.Detached = true
	}

	return record, true
}
