package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/bumpwatch/application"
	"github.com/rios0rios0/bumpwatch/domain"
	"github.com/rios0rios0/bumpwatch/infrastructure/provider/localgit"
)

//nolint:exhaustruct // Minimal Command initialization with required fields only
var localCmd = &cobra.Command{
	Use:   "local [path]",
	Short: "Check a local clone for major version bumps",
	Long: `Run the manifest check against a local repository checkout without any
hosting API. The two snapshots are read straight from the object database
of the clone, so any revision expression git understands works for --base
and --head (commit hashes, branch names, HEAD~1, ...).

No comment or label is posted in this mode; the result is logged and
written to GITHUB_OUTPUT when that variable is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLocal,
}

func init() {
	rootCmd.AddCommand(localCmd)

	localCmd.Flags().String("base", "", "Base revision (required)")
	localCmd.Flags().String("head", "HEAD", "Head revision")
	localCmd.Flags().String("manifest", "", "Manifest path inside the repository (default: versions.json)")
	localCmd.Flags().Bool("fail-on-bump", false, "Exit non-zero when a major bump is found")
}

func runLocal(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	base, _ := cmd.Flags().GetString("base")
	if base == "" {
		return errors.New("--base is required in local mode")
	}
	head, _ := cmd.Flags().GetString("head")

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	opts := buildCheckOptions(cmd, cfg)
	// A plain checkout has no hosting API to report through.
	opts.Comment = false
	opts.Label = ""

	service := application.NewCheckService()
	result, err := service.Check(
		ctx,
		localgit.New(dir),
		domain.Repository{Name: dir, ProviderName: "local"},
		domain.PullRequestEvent{BaseRevision: base, HeadRevision: head},
		opts,
	)
	if err != nil {
		return err
	}

	if failOnBump, _ := cmd.Flags().GetBool("fail-on-bump"); failOnBump && result.HasMajorBump {
		return errMajorBumpFound
	}

	return nil
}
