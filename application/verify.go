package application

import (
	"github.com/rios0rios0/bumpwatch/domain"
)

// VerifyIssue is one manifest entry that failed version validation.
type VerifyIssue struct {
	Path    string
	Version string
	Err     error
}

// VerifyManifest checks every entry of a present manifest against the
// MAJOR.MINOR.PATCH shape and returns the offenders in path order. Unlike
// the differ this is a diagnostic pass, so it collects all problems instead
// of stopping at the first one. An absent manifest has nothing to verify.
func VerifyManifest(manifest domain.Manifest) []VerifyIssue {
	var issues []VerifyIssue
	for _, path := range manifest.Paths() {
		version, _ := manifest.Version(path)
		if _, err := domain.ParseVersion(version); err != nil {
			issues = append(issues, VerifyIssue{Path: path, Version: version, Err: err})
		}
	}
	return issues
}
