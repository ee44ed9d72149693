package domain

// Repository identifies a repository on a Git hosting provider.
type Repository struct {
	Name         string
	Organization string
	RemoteURL    string
	ProviderName string
}

// PullRequestEvent carries the revision pair of one pull-request event.
// BaseRevision and HeadRevision are immutable commit identifiers; the ref
// names are kept for logging only.
type PullRequestEvent struct {
	Number       int
	BaseRevision string
	HeadRevision string
	BaseRef      string
	HeadRef      string
}

// CheckOptions holds runtime options for a single manifest check.
type CheckOptions struct {
	ManifestPath string
	Comment      bool   // post a summary comment on the pull request
	Label        string // label applied on a major bump; empty disables labeling
	DryRun       bool
	Verbose      bool
}
