package branch

import (
	"regexp"
	"strings"
)

var (
	invalidCharsRe       = regexp.MustCompile(`[\x00-\x1F\x7F ~^:?*\[\]#]`)
	consecutiveDotsRe    = regexp.MustCompile(`\.\.+`)
	consecutiveSlashesRe = regexp.MustCompile(`/+`)
)

// maxBranchNameLength keeps worktree directory names within filesystem limits.
const maxBranchNameLength = 255

// SanitizeBranchName sanitizes a branch name according to Git's reference
// naming rules: no control characters, space, `~ ^ : ? * [ ]`, no `..`, no
// `@{`, no backslash, no leading dash, and no leading or trailing slash or
// dot. Invalid characters are replaced with underscores; names that cannot
// be repaired return an error.
func SanitizeBranchName(branchName string) (string, error) {
	if branchName == "" {
		return "", ErrBranchNameEmpty
	}
	if branchName == "@" {
		return "", ErrBranchNameSingleAt
	}
	if strings.Contains(branchName, "@{") {
		return "", ErrBranchNameContainsAtBrace
	}
	if strings.Contains(branchName, "\\") {
		return "", ErrBranchNameContainsBackslash
	}

	sanitized := invalidCharsRe.ReplaceAllString(branchName, "_")
	sanitized = consecutiveDotsRe.ReplaceAllString(sanitized, "_")
	sanitized = consecutiveSlashesRe.ReplaceAllString(sanitized, "/")
	sanitized = strings.Trim(sanitized, "/._")
	sanitized = strings.TrimPrefix(sanitized, "-")

	if len(sanitized) > maxBranchNameLength {
		sanitized = sanitized[:maxBranchNameLength]
		sanitized = strings.TrimRight(sanitized, "._/")
	}

	if sanitized == "" {
		return "", ErrBranchNameEmptyAfterSanitize
	}

	return sanitized, nil
}
