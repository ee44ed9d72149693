package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// versionPattern matches exactly three dot-separated non-negative integers
// with no pre-release, build metadata, or wildcard segments.
var versionPattern = regexp.MustCompile(`^([0-9]+)\.([0-9]+)\.([0-9]+)$`)

// Version is a parsed semantic version. It is immutable once parsed and is
// never persisted; String returns the canonical digits-only form.
type Version struct {
	Major int
	Minor int
	Patch int
}

// InvalidVersionFormatError reports a version string that does not conform
// to the MAJOR.MINOR.PATCH shape. It carries the original offending input
// for diagnostics.
type InvalidVersionFormatError struct {
	Input string
}

func (e *InvalidVersionFormatError) Error() string {
	return fmt.Sprintf(
		"invalid version format: %q (expected MAJOR.MINOR.PATCH with an optional single marker prefix)",
		e.Input,
	)
}

// ParseVersion parses a version string of the shape MAJOR.MINOR.PATCH,
// tolerating at most one leading non-digit marker character (the common
// "v" convention). Anything else fails with *InvalidVersionFormatError.
func ParseVersion(text string) (Version, error) {
	stripped := text
	if stripped != "" && (stripped[0] < '0' || stripped[0] > '9') {
		stripped = stripped[1:]
	}

	match := versionPattern.FindStringSubmatch(stripped)
	if match == nil {
		return Version{}, &InvalidVersionFormatError{Input: text}
	}

	// The pattern guarantees digit-only segments, so Atoi cannot fail here.
	major, _ := strconv.Atoi(match[1])
	minor, _ := strconv.Atoi(match[2])
	patch, _ := strconv.Atoi(match[3])

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// String returns the canonical form: digits only, no prefix.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// IsMajorBump reports whether the transition from oldText to newText
// increases the major component. Minor and patch are ignored entirely, so
// equal versions and downgrades are both false. Parse failures on either
// input propagate as *InvalidVersionFormatError.
func IsMajorBump(oldText, newText string) (bool, error) {
	oldVer, err := ParseVersion(oldText)
	if err != nil {
		return false, err
	}

	newVer, err := ParseVersion(newText)
	if err != nil {
		return false, err
	}

	return newVer.Major > oldVer.Major, nil
}
