package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/bumpwatch/application"
	"github.com/rios0rios0/bumpwatch/config"
	"github.com/rios0rios0/bumpwatch/domain"
	providerPkg "github.com/rios0rios0/bumpwatch/infrastructure/provider"
	"github.com/rios0rios0/bumpwatch/infrastructure/provider/github"
)

const eventPathEnvVar = "GITHUB_EVENT_PATH"

var errMajorBumpFound = errors.New("major version bump detected")

//nolint:exhaustruct // Minimal Command initialization with required fields only
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a pull request for major version bumps",
	Long: `Fetch the version manifest at the pull request's base and head revisions
and report every entry whose major version increased.

The pull request can be identified explicitly with --owner/--repo/--pr and
the revision pair with --base/--head, or implicitly from a GitHub Actions
pull_request event payload (--event or the GITHUB_EVENT_PATH environment
variable).

Outputs "has-major-bump" and "major-bumps" are appended to the file named
by GITHUB_OUTPUT when it is set, and logged otherwise.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("provider", "", "Git hosting provider (github, gitlab)")
	checkCmd.Flags().String("owner", "", "Repository owner (organization or user)")
	checkCmd.Flags().String("repo", "", "Repository name")
	checkCmd.Flags().Int("pr", 0, "Pull request number")
	checkCmd.Flags().String("base", "", "Base revision (commit of the target branch)")
	checkCmd.Flags().String("head", "", "Head revision (commit of the source branch)")
	checkCmd.Flags().String("event", "", "Path to a pull_request event payload (default: $GITHUB_EVENT_PATH)")
	checkCmd.Flags().String("manifest", "", "Manifest path inside the repository (default: versions.json)")
	checkCmd.Flags().Bool("fail-on-bump", false, "Exit non-zero when a major bump is found")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	repo, event, err := resolveEvent(cmd)
	if err != nil {
		return err
	}

	providerType, _ := cmd.Flags().GetString("provider")
	if providerType == "" {
		providerType = cfg.Provider.Type
	}
	if providerType == "" {
		providerType = repo.ProviderName
	}
	if providerType == "" {
		providerType = providerGitHub
	}

	token := resolveAuthToken(cmd, cfg, providerType)
	if token == "" {
		return fmt.Errorf(
			"no auth token for provider %q (use --token, the config file, or %s)",
			providerType, tokenEnvVars[providerType],
		)
	}

	container, err := buildContainer()
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}

	var result domain.AnalysisResult
	invokeErr := container.Invoke(func(
		registry *providerPkg.Registry,
		service *application.CheckService,
	) error {
		provider, getErr := registry.Get(providerType, token)
		if getErr != nil {
			return getErr
		}

		opts := buildCheckOptions(cmd, cfg)

		checked, checkErr := service.Check(ctx, provider, repo, event, opts)
		if checkErr != nil {
			return checkErr
		}
		result = checked
		return nil
	})
	if invokeErr != nil {
		return invokeErr
	}

	if failOnBump, _ := cmd.Flags().GetBool("fail-on-bump"); failOnBump && result.HasMajorBump {
		return errMajorBumpFound
	}

	return nil
}

// resolveEvent builds the repository and revision pair, preferring explicit
// flags and falling back to a pull_request event payload.
func resolveEvent(cmd *cobra.Command) (domain.Repository, domain.PullRequestEvent, error) {
	owner, _ := cmd.Flags().GetString("owner")
	repoName, _ := cmd.Flags().GetString("repo")
	base, _ := cmd.Flags().GetString("base")
	head, _ := cmd.Flags().GetString("head")

	if owner != "" && repoName != "" && base != "" && head != "" {
		number, _ := cmd.Flags().GetInt("pr")
		return domain.Repository{Name: repoName, Organization: owner},
			domain.PullRequestEvent{Number: number, BaseRevision: base, HeadRevision: head},
			nil
	}

	eventPath, _ := cmd.Flags().GetString("event")
	if eventPath == "" {
		eventPath = os.Getenv(eventPathEnvVar)
	}
	if eventPath == "" {
		return domain.Repository{}, domain.PullRequestEvent{}, errors.New(
			"no pull request identified: pass --owner/--repo/--base/--head or provide an event payload",
		)
	}

	logger.Debugf("Reading pull request event from %s", eventPath)
	return github.ParseEventFile(eventPath)
}

func buildCheckOptions(cmd *cobra.Command, cfg *config.Config) domain.CheckOptions {
	manifestPath, _ := cmd.Flags().GetString("manifest")
	if manifestPath == "" {
		manifestPath = cfg.ManifestPath
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return domain.CheckOptions{
		ManifestPath: manifestPath,
		Comment:      cfg.Report.Comment,
		Label:        cfg.Report.Label,
		DryRun:       dryRun,
		Verbose:      verbose,
	}
}
