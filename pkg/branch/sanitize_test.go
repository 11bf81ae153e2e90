//go:build unit

package branch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeBranchName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "Simple branch name with slash",
			input:    "feature/new-branch",
			expected: "feature/new-branch",
			wantErr:  false,
		},
		{
			name:     "Branch name with invalid characters",
			input:    "bugfix/issue#123",
			expected: "bugfix/issue_123",
			wantErr:  false,
		},
		{
			name:     "Branch name with dots",
			input:    "release/v1.0.0",
			expected: "release/v1.0.0",
			wantErr:  false,
		},
		{
			name:    "Empty branch name",
			input:   "",
			wantErr: true,
		},
		{
			name:     "Branch name with leading and trailing dots",
			input:    ".hidden-branch.",
			expected: "hidden-branch",
			wantErr:  false,
		},
		{
			name:     "Branch name with consecutive dots",
			input:    "fix..double",
			expected: "fix_double",
			wantErr:  false,
		},
		{
			name:     "Branch name with consecutive slashes",
			input:    "feature//nested",
			expected: "feature/nested",
			wantErr:  false,
		},
		{
			name:    "Single at sign",
			input:   "@",
			wantErr: true,
		},
		{
			name:    "At brace sequence",
			input:   "branch@{upstream}",
			wantErr: true,
		},
		{
			name:    "Backslash",
			input:   `feature\name`,
			wantErr: true,
		},
		{
			name:     "Leading dash removed",
			input:    "-delete-me",
			expected: "delete-me",
			wantErr:  false,
		},
		{
			name:    "Only invalid characters",
			input:   "???",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeBranchName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
