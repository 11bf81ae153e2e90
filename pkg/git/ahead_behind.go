package git

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// AheadBehind returns commit counts of HEAD relative to its upstream.
//
// The upstream reference is resolved by git itself via @{upstream}; when no
// upstream is configured the command fails and ErrNoUpstream is returned.
func (g *realGit) AheadBehind(worktreePath string) (int, int, error) {
	cmd := exec.Command("git", "rev-list", "--left-right", "--count", "HEAD...@{upstream}")
	cmd.Dir = worktreePath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrNoUpstream, strings.TrimSpace(string(output)))
	}

	// Output format: "<ahead>\t<behind>"
	fields := strings.Fields(strings.TrimSpace(string(output)))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output: %q", string(output))
	}

	ahead, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected rev-list output: %q", string(output))
	}
	behind, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected rev-list output: %q", string(output))
	}

	return ahead, behind, nil
}
