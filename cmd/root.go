package cmd

import (
	"github.com/spf13/cobra"
)

//nolint:exhaustruct // Minimal Command initialization with required fields only
var rootCmd = &cobra.Command{
	Use:   "bumpwatch",
	Short: "Major-version manifest gate for pull requests",
	Long: `A pull-request gate that watches a flat path-to-version JSON manifest
(versions.json by default) and detects semantic-version major bumps.

For each pull-request event it fetches the manifest at the base and head
revisions, computes which entries increased their major component, and
reports a boolean flag plus a structured diff. New and removed packages are
never flagged; a single malformed version string fails the whole check.

Usage modes:
  bumpwatch check           Hosted mode against a GitHub/GitLab pull request
  bumpwatch local [path]    Standalone mode over a local clone
  bumpwatch verify [file]   Validate every version string in a manifest file`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().String("token", "",
		"Auth token for the Git provider (overrides config and env var detection)")
	rootCmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be done without making changes")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
}
