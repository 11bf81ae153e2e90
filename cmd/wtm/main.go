// Package main provides the command-line interface for the WTM application.
package main

import (
	"os"

	"github.com/lerenn/wtm/pkg/config"
	"github.com/lerenn/wtm/pkg/dependencies"
	"github.com/lerenn/wtm/pkg/logger"
	"github.com/lerenn/wtm/pkg/wtm"
	"github.com/spf13/cobra"
)

var (
	quiet      bool
	verbose    bool
	configPath string
)

// loadConfig loads the global configuration, falling back to defaults when
// no file is present.
func loadConfig() *config.Config {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.LoadConfigWithFallback(path)
}

// selectLogger maps the global flags onto a logger implementation.
func selectLogger() logger.Logger {
	switch {
	case quiet:
		return logger.NewNoopLogger()
	case verbose:
		return logger.NewVerboseLogger()
	default:
		return logger.NewDefaultLogger()
	}
}

// newWTM builds a WTM instance from the global flags.
func newWTM() (wtm.WTM, error) {
	deps := dependencies.New().
		WithConfig(loadConfig()).
		WithLogger(selectLogger())

	return wtm.NewWTM(wtm.NewWTMParams{Dependencies: deps})
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "wtm",
		Short: "WTM - Bare-Store Git WorkTree Manager",
		Long: `A CLI tool for managing multiple worktrees of a single Git repository ` +
			`sharing one bare object store at <root>/.bare.`,
		SilenceUsage: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(
		createCloneCmd(),
		createBranchCmd(),
		createAddCmd(),
		createRmCmd(),
		createListCmd(),
		createPruneCmd(),
		createSyncCmd(),
		createSwitchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
