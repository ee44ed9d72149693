package cmd

import (
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/bumpwatch/application"
	"github.com/rios0rios0/bumpwatch/config"
	"github.com/rios0rios0/bumpwatch/domain"
)

//nolint:exhaustruct // Minimal Command initialization with required fields only
var verifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "Validate every version string in a manifest file",
	Long: `Parse a local manifest file and check that every entry is a valid
MAJOR.MINOR.PATCH version (an optional single "v"-style prefix is allowed).

Unlike the pull-request check, which fails fast on the first malformed
entry, verify reports all offending entries at once.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(_ *cobra.Command, args []string) error {
	path := config.DefaultManifestPath
	if len(args) > 0 {
		path = args[0]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	manifest, err := domain.ParseManifest(data)
	if err != nil {
		return err
	}

	issues := application.VerifyManifest(manifest)
	for _, issue := range issues {
		logger.Errorf("%s: %v", issue.Path, issue.Err)
	}

	if len(issues) > 0 {
		return fmt.Errorf("%d of %d manifest entries are invalid", len(issues), manifest.Len())
	}

	logger.Infof("All %d manifest entries are valid", manifest.Len())
	return nil
}
