package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/bumpwatch/domain"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	t.Run("should parse valid versions", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name      string
			input     string
			expected  domain.Version
			canonical string
		}{
			{
				name:      "plain three-part version",
				input:     "1.2.3",
				expected:  domain.Version{Major: 1, Minor: 2, Patch: 3},
				canonical: "1.2.3",
			},
			{
				name:      "v-prefixed version",
				input:     "v1.2.3",
				expected:  domain.Version{Major: 1, Minor: 2, Patch: 3},
				canonical: "1.2.3",
			},
			{
				name:      "arbitrary single marker prefix",
				input:     "=2.0.0",
				expected:  domain.Version{Major: 2, Minor: 0, Patch: 0},
				canonical: "2.0.0",
			},
			{
				name:      "zero version",
				input:     "0.0.0",
				expected:  domain.Version{Major: 0, Minor: 0, Patch: 0},
				canonical: "0.0.0",
			},
			{
				name:      "leading zeros canonicalize to plain integers",
				input:     "01.02.003",
				expected:  domain.Version{Major: 1, Minor: 2, Patch: 3},
				canonical: "1.2.3",
			},
			{
				name:      "multi-digit components",
				input:     "v10.20.30",
				expected:  domain.Version{Major: 10, Minor: 20, Patch: 30},
				canonical: "10.20.30",
			},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				// given
				input := tt.input

				// when
				version, err := domain.ParseVersion(input)

				// then
				require.NoError(t, err)
				assert.Equal(t, tt.expected, version)
				assert.Equal(t, tt.canonical, version.String())
			})
		}
	})

	t.Run("should reject malformed versions", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name  string
			input string
		}{
			{name: "empty string", input: ""},
			{name: "bare marker", input: "v"},
			{name: "two segments", input: "1.2"},
			{name: "four segments", input: "1.2.3.4"},
			{name: "non-numeric segment", input: "1.2.x"},
			{name: "doubled marker prefix", input: "vv1.2.3"},
			{name: "pre-release suffix", input: "1.2.3-beta"},
			{name: "build metadata suffix", input: "1.2.3+build.7"},
			{name: "trailing dot", input: "1.2.3."},
			{name: "negative component", input: "1.-2.3"},
			{name: "inner whitespace", input: "1. 2.3"},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				// given
				input := tt.input

				// when
				_, err := domain.ParseVersion(input)

				// then
				var formatErr *domain.InvalidVersionFormatError
				require.ErrorAs(t, err, &formatErr)
				assert.Equal(t, input, formatErr.Input)
			})
		}
	})

	t.Run("should carry the offending input in the error message", func(t *testing.T) {
		t.Parallel()

		// given
		input := "1.2"

		// when
		_, err := domain.ParseVersion(input)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"1.2"`)
	})
}

func TestIsMajorBump(t *testing.T) {
	t.Parallel()

	t.Run("should classify transitions by the major component only", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			oldText  string
			newText  string
			expected bool
		}{
			{name: "major increase", oldText: "1.2.3", newText: "2.0.0", expected: true},
			{name: "major jump of several", oldText: "1.0.0", newText: "5.0.0", expected: true},
			{name: "major increase with lower minor and patch", oldText: "1.9.9", newText: "2.0.0", expected: true},
			{name: "minor increase only", oldText: "1.2.3", newText: "1.3.0", expected: false},
			{name: "patch increase only", oldText: "1.2.3", newText: "1.2.4", expected: false},
			{name: "equal versions", oldText: "1.2.3", newText: "1.2.3", expected: false},
			{name: "major downgrade", oldText: "2.0.0", newText: "1.9.9", expected: false},
			{name: "v-prefixed pair", oldText: "v1.2.3", newText: "v2.0.0", expected: true},
			{name: "mixed prefix styles", oldText: "1.2.3", newText: "v2.0.0", expected: true},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				// given
				oldText, newText := tt.oldText, tt.newText

				// when
				result, err := domain.IsMajorBump(oldText, newText)

				// then
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			})
		}
	})

	t.Run("should be false for any version compared with itself", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"0.0.0", "1.2.3", "v9.9.9", "10.0.1"} {
			// when
			result, err := domain.IsMajorBump(input, input)

			// then
			require.NoError(t, err)
			assert.False(t, result, "expected no bump for %q against itself", input)
		}
	})

	t.Run("should propagate a parse failure on the old version", func(t *testing.T) {
		t.Parallel()

		// given
		oldText, newText := "1.2", "2.0.0"

		// when
		_, err := domain.IsMajorBump(oldText, newText)

		// then
		var formatErr *domain.InvalidVersionFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "1.2", formatErr.Input)
	})

	t.Run("should propagate a parse failure on the new version", func(t *testing.T) {
		t.Parallel()

		// given
		oldText, newText := "1.0.0", "not-a-version"

		// when
		_, err := domain.IsMajorBump(oldText, newText)

		// then
		var formatErr *domain.InvalidVersionFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "not-a-version", formatErr.Input)
	})
}

func TestInvalidVersionFormatError(t *testing.T) {
	t.Parallel()

	t.Run("should unwrap through fmt wrapping", func(t *testing.T) {
		t.Parallel()

		// given
		_, err := domain.ParseVersion("oops")
		wrapped := errors.Join(err)

		// when
		var formatErr *domain.InvalidVersionFormatError
		ok := errors.As(wrapped, &formatErr)

		// then
		require.True(t, ok)
		assert.Equal(t, "oops", formatErr.Input)
	})
}
