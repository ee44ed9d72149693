package domain

import (
	"context"
	"errors"
)

// ErrReportingUnsupported is returned by providers that have no hosting API
// to report through (e.g. a plain local clone).
var ErrReportingUnsupported = errors.New("pull request reporting is not supported by this provider")

// Provider abstracts a Git hosting service (GitHub, GitLab, or a local
// clone). Each implementation handles authentication, manifest retrieval at
// a given revision, and pull request reporting for its platform.
type Provider interface {
	// Name returns the provider identifier (e.g. "github", "gitlab", "local").
	Name() string

	// MatchesURL returns true if the given remote URL belongs to this provider.
	MatchesURL(url string) bool

	// FetchManifest reads and decodes the version manifest at one revision.
	// It returns the absent variant when the file does not exist at that
	// revision; every other failure propagates to the caller unmodified.
	FetchManifest(ctx context.Context, repo Repository, path, revision string) (Manifest, error)

	// CommentOnPullRequest posts a markdown comment on the pull request.
	CommentOnPullRequest(ctx context.Context, repo Repository, number int, body string) error

	// SetLabels applies and removes labels on the pull request.
	SetLabels(ctx context.Context, repo Repository, number int, add, remove []string) error

	// AuthToken returns the authentication token configured for this provider.
	AuthToken() string
}
