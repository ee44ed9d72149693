package domain

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Manifest is the version-manifest content at one revision: a flat mapping
// from package path to version string. It is a two-variant value — either
// present (possibly with zero entries) or absent (the file did not exist at
// that revision). An empty mapping is never the same thing as an absent
// manifest: a repository can legitimately ship an empty package list.
type Manifest struct {
	present bool
	entries map[string]string
}

// NewManifest returns a present manifest with a copy of the given entries.
// A nil map yields a present manifest with zero entries.
func NewManifest(entries map[string]string) Manifest {
	copied := make(map[string]string, len(entries))
	for path, version := range entries {
		copied[path] = version
	}
	return Manifest{present: true, entries: copied}
}

// AbsentManifest returns the "file did not exist at this revision" variant.
func AbsentManifest() Manifest {
	return Manifest{}
}

// ParseManifest decodes the UTF-8 JSON object form of a manifest file.
// Every value must be a string; any other shape fails.
func ParseManifest(data []byte) (Manifest, error) {
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return NewManifest(entries), nil
}

// Present reports whether the manifest file existed at the revision.
func (m Manifest) Present() bool {
	return m.present
}

// Version returns the version string recorded for a package path.
func (m Manifest) Version(path string) (string, bool) {
	version, ok := m.entries[path]
	return version, ok
}

// Len returns the number of entries. Zero for the absent variant.
func (m Manifest) Len() int {
	return len(m.entries)
}

// Paths returns the package paths in lexical order.
func (m Manifest) Paths() []string {
	paths := make([]string, 0, len(m.entries))
	for path := range m.entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
