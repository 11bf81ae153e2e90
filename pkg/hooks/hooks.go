// Package hooks manages the post-creation hook file and its execution.
package hooks

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/lerenn/wtm/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=executor.go -destination=mocks/executor.gen.go -package=mocks

// FileName is the hook file name at repository-root scope.
const FileName = "post-hook.json"

// Config is the persisted hook configuration. It is written empty at clone
// time and edited by the user afterwards.
type Config struct {
	// Hooks are shell commands executed in list order after worktree creation.
	Hooks []string `json:"hooks"`
}

// FilePath returns the hook file path for a repository root.
func FilePath(repoRoot string) string {
	return filepath.Join(repoRoot, FileName)
}

// InitialContent returns the content written at clone time.
func InitialContent() []byte {
	return []byte(`{"hooks":[]}`)
}

// LoadConfig reads the hook file for a repository root. A missing file means
// no hooks and is not an error.
func LoadConfig(fs fs.FS, repoRoot string) (Config, error) {
	path := FilePath(repoRoot)

	exists, err := fs.Exists(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to check hook file: %w", err)
	}
	if !exists {
		return Config{}, nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read hook file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidHookFile, path, err)
	}

	return config, nil
}
