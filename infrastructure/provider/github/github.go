package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	gh "github.com/google/go-github/v66/github"

	"github.com/rios0rios0/bumpwatch/domain"
)

const providerName = "github"

// Provider implements domain.Provider for GitHub.
type Provider struct {
	token  string
	client *gh.Client
}

// New creates a new GitHub provider with the given token.
func New(token string) domain.Provider {
	client := gh.NewClient(nil).WithAuthToken(token)
	return &Provider{
		token:  token,
		client: client,
	}
}

func (p *Provider) Name() string      { return providerName }
func (p *Provider) AuthToken() string { return p.token }

func (p *Provider) MatchesURL(rawURL string) bool {
	return strings.Contains(rawURL, "github.com")
}

// FetchManifest reads the manifest file at the given revision. A 404 from
// the contents API means the file did not exist at that revision, which is
// reported as the absent variant rather than an error.
func (p *Provider) FetchManifest(
	ctx context.Context,
	repo domain.Repository,
	path, revision string,
) (domain.Manifest, error) {
	fileContent, _, _, err := p.client.Repositories.GetContents(
		ctx, repo.Organization, repo.Name, path,
		&gh.RepositoryContentGetOptions{Ref: revision},
	)
	if err != nil {
		if isNotFound(err) {
			return domain.AbsentManifest(), nil
		}
		return domain.Manifest{}, fmt.Errorf(
			"failed to get file %q at %q: %w", path, revision, err,
		)
	}
	if fileContent == nil {
		return domain.Manifest{}, fmt.Errorf("path %q is a directory, not a file", path)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("failed to decode file content: %w", err)
	}

	return domain.ParseManifest([]byte(content))
}

// CommentOnPullRequest posts a comment through the issues API, which is how
// GitHub models PR conversation comments.
func (p *Provider) CommentOnPullRequest(
	ctx context.Context,
	repo domain.Repository,
	number int,
	body string,
) error {
	_, _, err := p.client.Issues.CreateComment(
		ctx, repo.Organization, repo.Name, number,
		&gh.IssueComment{Body: gh.String(body)},
	)
	if err != nil {
		return fmt.Errorf("failed to comment on pull request #%d: %w", number, err)
	}
	return nil
}

func (p *Provider) SetLabels(
	ctx context.Context,
	repo domain.Repository,
	number int,
	add, remove []string,
) error {
	if len(add) > 0 {
		_, _, err := p.client.Issues.AddLabelsToIssue(
			ctx, repo.Organization, repo.Name, number, add,
		)
		if err != nil {
			return fmt.Errorf("failed to add labels to #%d: %w", number, err)
		}
	}

	for _, label := range remove {
		_, err := p.client.Issues.RemoveLabelForIssue(
			ctx, repo.Organization, repo.Name, number, label,
		)
		if err != nil && !isNotFound(err) {
			return fmt.Errorf("failed to remove label %q from #%d: %w", label, number, err)
		}
	}

	return nil
}

// isNotFound reports whether err is a GitHub API 404 response.
func isNotFound(err error) bool {
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return ghErr.Response.StatusCode == http.StatusNotFound
	}
	return false
}
