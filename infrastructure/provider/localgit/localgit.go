package localgit

import (
	"context"
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/rios0rios0/bumpwatch/domain"
)

const providerName = "local"

// Provider implements domain.Provider over a local clone. It resolves
// revisions and reads manifest blobs straight from the object database, so
// it needs no network access and no token. Reporting operations are not
// available: there is no hosting API behind a plain checkout.
type Provider struct {
	dir string
}

// New creates a provider over the repository checkout at dir.
func New(dir string) domain.Provider {
	return &Provider{dir: dir}
}

func (p *Provider) Name() string           { return providerName }
func (p *Provider) AuthToken() string      { return "" }
func (p *Provider) MatchesURL(string) bool { return false }

// FetchManifest resolves the revision, walks the commit tree, and decodes
// the manifest blob. A path missing from the tree is the absent variant;
// an unresolvable revision is an error, since the caller named a revision
// that does not exist.
func (p *Provider) FetchManifest(
	_ context.Context,
	_ domain.Repository,
	path, revision string,
) (domain.Manifest, error) {
	repo, err := git.PlainOpen(p.dir)
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("failed to open repository at %q: %w", p.dir, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("failed to resolve revision %q: %w", revision, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("failed to load commit %s: %w", hash, err)
	}

	file, err := commit.File(path)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return domain.AbsentManifest(), nil
		}
		return domain.Manifest{}, fmt.Errorf("failed to read %q at %s: %w", path, hash, err)
	}

	content, err := file.Contents()
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("failed to read blob for %q: %w", path, err)
	}

	return domain.ParseManifest([]byte(content))
}

func (p *Provider) CommentOnPullRequest(
	_ context.Context,
	_ domain.Repository,
	_ int,
	_ string,
) error {
	return domain.ErrReportingUnsupported
}

func (p *Provider) SetLabels(
	_ context.Context,
	_ domain.Repository,
	_ int,
	_, _ []string,
) error {
	return domain.ErrReportingUnsupported
}
