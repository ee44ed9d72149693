package application

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/bumpwatch/domain"
)

// CheckService orchestrates one manifest check: fetch the manifest at the
// base and head revisions, run the differ, and report the outcome.
type CheckService struct{}

// NewCheckService creates a new CheckService.
func NewCheckService() *CheckService {
	return &CheckService{}
}

// Check runs the full analysis for one pull-request event and returns the
// result. Side effects (workflow outputs, PR comment, label) follow the
// options; the analysis itself is always performed.
func (s *CheckService) Check(
	ctx context.Context,
	provider domain.Provider,
	repo domain.Repository,
	event domain.PullRequestEvent,
	opts domain.CheckOptions,
) (domain.AnalysisResult, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	logger.Infof(
		"Checking %q for %s...%s (PR #%d)",
		opts.ManifestPath, shortRevision(event.BaseRevision),
		shortRevision(event.HeadRevision), event.Number,
	)

	oldManifest, newManifest, err := s.fetchSnapshots(ctx, provider, repo, event, opts.ManifestPath)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	if !oldManifest.Present() {
		logger.Debugf("Manifest absent at base revision %s", event.BaseRevision)
	}
	if !newManifest.Present() {
		logger.Debugf("Manifest absent at head revision %s", event.HeadRevision)
	}

	result, err := domain.AnalyzeManifestChanges(oldManifest, newManifest)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("manifest analysis failed: %w", err)
	}

	logger.Infof("Major bumps found: %d", len(result.MajorBumps))

	if writeErr := WriteWorkflowOutputs(result); writeErr != nil {
		return domain.AnalysisResult{}, writeErr
	}

	if reportErr := s.report(ctx, provider, repo, event, opts, result); reportErr != nil {
		return domain.AnalysisResult{}, reportErr
	}

	return result, nil
}

// fetchSnapshots resolves both manifest snapshots concurrently. The differ
// has no ordering dependency between the two fetches, so either completion
// order is fine; any failure other than "file absent" (which the provider
// maps to the absent variant) aborts the check unmodified.
func (s *CheckService) fetchSnapshots(
	ctx context.Context,
	provider domain.Provider,
	repo domain.Repository,
	event domain.PullRequestEvent,
	manifestPath string,
) (domain.Manifest, domain.Manifest, error) {
	var oldManifest, newManifest domain.Manifest

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		m, err := provider.FetchManifest(groupCtx, repo, manifestPath, event.BaseRevision)
		if err != nil {
			return err
		}
		oldManifest = m
		return nil
	})
	group.Go(func() error {
		m, err := provider.FetchManifest(groupCtx, repo, manifestPath, event.HeadRevision)
		if err != nil {
			return err
		}
		newManifest = m
		return nil
	})

	if err := group.Wait(); err != nil {
		return domain.Manifest{}, domain.Manifest{}, err
	}

	return oldManifest, newManifest, nil
}

// report applies the PR-facing side effects: summary comment and label.
func (s *CheckService) report(
	ctx context.Context,
	provider domain.Provider,
	repo domain.Repository,
	event domain.PullRequestEvent,
	opts domain.CheckOptions,
	result domain.AnalysisResult,
) error {
	if opts.DryRun {
		if opts.Comment || opts.Label != "" {
			logger.Infof("[DRY RUN] Would report %d major bumps on PR #%d",
				len(result.MajorBumps), event.Number)
		}
		return nil
	}

	if event.Number == 0 {
		logger.Debug("No pull request number known, skipping comment and label")
		return nil
	}

	if opts.Comment && result.HasMajorBump {
		body := RenderComment(result, opts.ManifestPath)
		if err := provider.CommentOnPullRequest(ctx, repo, event.Number, body); err != nil {
			return fmt.Errorf("failed to post summary comment: %w", err)
		}
	}

	if opts.Label != "" {
		var add, remove []string
		if result.HasMajorBump {
			add = []string{opts.Label}
		} else {
			remove = []string{opts.Label}
		}
		if err := provider.SetLabels(ctx, repo, event.Number, add, remove); err != nil {
			return fmt.Errorf("failed to update labels: %w", err)
		}
	}

	return nil
}

const shortRevisionLen = 12

// shortRevision abbreviates a commit identifier for log lines.
func shortRevision(revision string) string {
	if len(revision) > shortRevisionLen {
		return revision[:shortRevisionLen]
	}
	return revision
}
