//go:build unit

package main

import (
	"testing"

	"github.com/lerenn/wtm/pkg/worktree"
	"github.com/stretchr/testify/assert"
)

func TestFormatRecord(t *testing.T) {
	tests := []struct {
		name   string
		record worktree.Record
		want   string
	}{
		{
			name:   "clean worktree",
			record: worktree.Record{Path: "/repo/main", Branch: "main", Exists: true},
			want:   "main                     /repo/main",
		},
		{
			name: "dirty and behind",
			record: worktree.Record{
				Path: "/repo/feature-x", Branch: "feature-x", Exists: true,
				DirtyFiles: 2, HasUpstream: true, Behind: 3,
			},
			want: "feature-x                /repo/feature-x  [dirty:2, behind:3]",
		},
		{
			name:   "orphaned",
			record: worktree.Record{Path: "/repo/gone", Branch: "gone", Exists: false},
			want:   "gone                     /repo/gone  [orphaned]",
		},
		{
			name:   "detached",
			record: worktree.Record{Path: "/repo/detached", Detached: true, Exists: true},
			want:   "(detached)               /repo/detached",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatRecord(tt.record))
		})
	}
}
