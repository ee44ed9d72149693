package domain

import (
	"encoding/json"
	"fmt"
)

const bumpResultArity = 2

// BumpResult is one major-version transition: the old and new version
// strings for a single package path. It serializes as a two-element JSON
// array ["old", "new"], the wire shape consumed downstream.
type BumpResult struct {
	Old string
	New string
}

// MarshalJSON encodes the pair as ["old", "new"].
func (b BumpResult) MarshalJSON() ([]byte, error) {
	return json.Marshal([bumpResultArity]string{b.Old, b.New})
}

// UnmarshalJSON decodes the ["old", "new"] pair form.
func (b *BumpResult) UnmarshalJSON(data []byte) error {
	var pair [bumpResultArity]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("failed to decode bump pair: %w", err)
	}
	b.Old = pair[0]
	b.New = pair[1]
	return nil
}

// AnalysisResult aggregates the major bumps found between two manifest
// snapshots. HasMajorBump is derived: it is true exactly when MajorBumps is
// non-empty.
type AnalysisResult struct {
	HasMajorBump bool                  `json:"hasMajorBump"`
	MajorBumps   map[string]BumpResult `json:"majorBumps"`
}

// AnalyzeManifestChanges compares the manifest at the base revision against
// the manifest at the head revision and reports every package path whose
// major component increased.
//
// Policy, pinned by the reference behavior:
//   - If either snapshot is absent, the result is empty and non-bumping —
//     no partial analysis is attempted.
//   - Only paths in the new snapshot are visited: removed packages are
//     never reported, and paths introduced by the change are skipped
//     regardless of their starting version.
//   - Identical version strings and non-major transitions are skipped.
//   - A single unparsable version string anywhere in the overlap aborts
//     the whole analysis with *InvalidVersionFormatError. A corrupt
//     manifest must stop the pipeline rather than silently under-report.
//
// The computation is pure, single-pass, and order-independent: identical
// inputs always yield an identical result.
func AnalyzeManifestChanges(oldManifest, newManifest Manifest) (AnalysisResult, error) {
	result := AnalysisResult{MajorBumps: map[string]BumpResult{}}

	if !oldManifest.Present() || !newManifest.Present() {
		return result, nil
	}

	for path, newVersion := range newManifest.entries {
		oldVersion, existed := oldManifest.entries[path]
		if !existed {
			continue // package introduced by this change
		}
		if oldVersion == newVersion {
			continue
		}

		major, err := IsMajorBump(oldVersion, newVersion)
		if err != nil {
			return AnalysisResult{MajorBumps: map[string]BumpResult{}}, err
		}
		if major {
			result.MajorBumps[path] = BumpResult{Old: oldVersion, New: newVersion}
		}
	}

	result.HasMajorBump = len(result.MajorBumps) > 0
	return result, nil
}
