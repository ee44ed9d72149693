// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations — no mock frameworks.
package testdoubles

import (
	"context"
	"sync"

	"github.com/rios0rios0/bumpwatch/domain"
)

// SpyProvider implements domain.Provider as a configurable spy.
// Configure the response fields for the methods your test exercises,
// then inspect the call-tracking fields to verify behavior.
// Safe for concurrent calls: the service fetches both snapshots in parallel.
type SpyProvider struct {
	mu sync.Mutex

	// --- identity ---
	ProviderName string
	Token        string

	// --- FetchManifest ---
	Manifests map[string]domain.Manifest // revision -> manifest
	FetchErrs map[string]error           // revision -> error
	// spy: revisions that were requested, in call order
	FetchedRevisions []string
	// spy: manifest paths that were requested
	FetchedPaths []string

	// --- CommentOnPullRequest ---
	CommentErr error
	// spy: comment bodies received
	Comments []string
	// spy: PR numbers commented on
	CommentedPRs []int

	// --- SetLabels ---
	SetLabelsErr error
	// spy: labels added and removed
	AddedLabels   []string
	RemovedLabels []string
}

var _ domain.Provider = (*SpyProvider)(nil)

func (p *SpyProvider) Name() string { return p.ProviderName }

func (p *SpyProvider) AuthToken() string { return p.Token }

func (p *SpyProvider) MatchesURL(_ string) bool { return false }

func (p *SpyProvider) FetchManifest(
	_ context.Context,
	_ domain.Repository,
	path, revision string,
) (domain.Manifest, error) {
	p.mu.Lock()
	p.FetchedRevisions = append(p.FetchedRevisions, revision)
	p.FetchedPaths = append(p.FetchedPaths, path)
	p.mu.Unlock()

	if err, ok := p.FetchErrs[revision]; ok {
		return domain.Manifest{}, err
	}
	if manifest, ok := p.Manifests[revision]; ok {
		return manifest, nil
	}
	return domain.AbsentManifest(), nil
}

func (p *SpyProvider) CommentOnPullRequest(
	_ context.Context,
	_ domain.Repository,
	number int,
	body string,
) error {
	p.Comments = append(p.Comments, body)
	p.CommentedPRs = append(p.CommentedPRs, number)
	return p.CommentErr
}

func (p *SpyProvider) SetLabels(
	_ context.Context,
	_ domain.Repository,
	_ int,
	add, remove []string,
) error {
	p.AddedLabels = append(p.AddedLabels, add...)
	p.RemovedLabels = append(p.RemovedLabels, remove...)
	return p.SetLabelsErr
}
