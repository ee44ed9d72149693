package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	gh "github.com/google/go-github/v66/github"

	"github.com/rios0rios0/bumpwatch/domain"
)

var errNotPullRequestEvent = errors.New("event payload is not a pull_request event")

// ParseEventFile reads a GitHub Actions pull_request event payload (the
// file pointed at by GITHUB_EVENT_PATH) and extracts the repository and the
// base/head revision pair.
func ParseEventFile(path string) (domain.Repository, domain.PullRequestEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Repository{}, domain.PullRequestEvent{},
			fmt.Errorf("failed to read event payload %q: %w", path, err)
	}
	return parseEvent(data)
}

func parseEvent(data []byte) (domain.Repository, domain.PullRequestEvent, error) {
	var payload gh.PullRequestEvent
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.Repository{}, domain.PullRequestEvent{},
			fmt.Errorf("failed to parse event payload: %w", err)
	}

	pr := payload.GetPullRequest()
	if pr == nil || payload.GetRepo() == nil {
		return domain.Repository{}, domain.PullRequestEvent{}, errNotPullRequestEvent
	}

	repo := domain.Repository{
		Name:         payload.GetRepo().GetName(),
		Organization: payload.GetRepo().GetOwner().GetLogin(),
		RemoteURL:    payload.GetRepo().GetCloneURL(),
		ProviderName: providerName,
	}

	event := domain.PullRequestEvent{
		Number:       pr.GetNumber(),
		BaseRevision: pr.GetBase().GetSHA(),
		HeadRevision: pr.GetHead().GetSHA(),
		BaseRef:      pr.GetBase().GetRef(),
		HeadRef:      pr.GetHead().GetRef(),
	}

	return repo, event, nil
}
