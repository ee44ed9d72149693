package gitlab

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	gl "gitlab.com/gitlab-org/api/client-go"

	"github.com/rios0rios0/bumpwatch/domain"
)

const providerName = "gitlab"

var errClientNotInitialized = errors.New("gitlab client not initialized")

// Provider implements domain.Provider for GitLab. Pull requests map to
// merge requests; the event number is the merge request IID.
type Provider struct {
	token  string
	client *gl.Client
}

// New creates a new GitLab provider with the given token.
func New(token string) domain.Provider {
	client, err := gl.NewClient(token)
	if err != nil {
		// Return a provider that will fail on use rather than panicking at construction
		return &Provider{token: token, client: nil}
	}
	return &Provider{
		token:  token,
		client: client,
	}
}

func (p *Provider) Name() string      { return providerName }
func (p *Provider) AuthToken() string { return p.token }

func (p *Provider) MatchesURL(rawURL string) bool {
	return strings.Contains(rawURL, "gitlab.com")
}

// FetchManifest reads the manifest file at the given revision. A 404 means
// the file did not exist at that revision and is reported as the absent
// variant rather than an error.
func (p *Provider) FetchManifest(
	ctx context.Context,
	repo domain.Repository,
	path, revision string,
) (domain.Manifest, error) {
	if p.client == nil {
		return domain.Manifest{}, errClientNotInitialized
	}

	raw, resp, err := p.client.RepositoryFiles.GetRawFile(
		p.projectID(repo), path,
		&gl.GetRawFileOptions{Ref: gl.Ptr(revision)},
		gl.WithContext(ctx),
	)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return domain.AbsentManifest(), nil
		}
		return domain.Manifest{}, fmt.Errorf(
			"failed to get file %q at %q: %w", path, revision, err,
		)
	}

	return domain.ParseManifest(raw)
}

func (p *Provider) CommentOnPullRequest(
	ctx context.Context,
	repo domain.Repository,
	number int,
	body string,
) error {
	if p.client == nil {
		return errClientNotInitialized
	}

	_, _, err := p.client.Notes.CreateMergeRequestNote(
		p.projectID(repo), number,
		&gl.CreateMergeRequestNoteOptions{Body: gl.Ptr(body)},
		gl.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to comment on merge request !%d: %w", number, err)
	}
	return nil
}

func (p *Provider) SetLabels(
	ctx context.Context,
	repo domain.Repository,
	number int,
	add, remove []string,
) error {
	if p.client == nil {
		return errClientNotInitialized
	}

	addLabels := gl.LabelOptions(add)
	removeLabels := gl.LabelOptions(remove)
	_, _, err := p.client.MergeRequests.UpdateMergeRequest(
		p.projectID(repo), number,
		&gl.UpdateMergeRequestOptions{
			AddLabels:    &addLabels,
			RemoveLabels: &removeLabels,
		},
		gl.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to update labels on merge request !%d: %w", number, err)
	}
	return nil
}

func (p *Provider) projectID(repo domain.Repository) string {
	return repo.Organization + "/" + repo.Name
}
