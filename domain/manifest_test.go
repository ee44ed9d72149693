package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/bumpwatch/domain"
)

func TestManifest(t *testing.T) {
	t.Parallel()

	t.Run("should distinguish an absent manifest from an empty one", func(t *testing.T) {
		t.Parallel()

		// given
		absent := domain.AbsentManifest()
		empty := domain.NewManifest(nil)

		// then
		assert.False(t, absent.Present())
		assert.True(t, empty.Present())
		assert.Equal(t, 0, absent.Len())
		assert.Equal(t, 0, empty.Len())
	})

	t.Run("should copy the entries it is given", func(t *testing.T) {
		t.Parallel()

		// given
		entries := map[string]string{".": "1.0.0"}
		manifest := domain.NewManifest(entries)

		// when
		entries["."] = "9.9.9"

		// then
		version, ok := manifest.Version(".")
		require.True(t, ok)
		assert.Equal(t, "1.0.0", version)
	})

	t.Run("should look up versions by package path", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := domain.NewManifest(map[string]string{
			"packages/foo": "1.2.3",
		})

		// when
		found, foundOK := manifest.Version("packages/foo")
		_, missingOK := manifest.Version("packages/bar")

		// then
		assert.True(t, foundOK)
		assert.Equal(t, "1.2.3", found)
		assert.False(t, missingOK)
	})

	t.Run("should list paths in lexical order", func(t *testing.T) {
		t.Parallel()

		// given
		manifest := domain.NewManifest(map[string]string{
			"packages/zeta": "1.0.0",
			".":             "2.0.0",
			"packages/alfa": "3.0.0",
		})

		// when
		paths := manifest.Paths()

		// then
		assert.Equal(t, []string{".", "packages/alfa", "packages/zeta"}, paths)
	})
}

func TestParseManifest(t *testing.T) {
	t.Parallel()

	t.Run("should decode a flat JSON object of version strings", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte(`{".": "1.2.3", "packages/foo": "v2.0.0"}`)

		// when
		manifest, err := domain.ParseManifest(data)

		// then
		require.NoError(t, err)
		assert.True(t, manifest.Present())
		assert.Equal(t, 2, manifest.Len())

		version, ok := manifest.Version("packages/foo")
		require.True(t, ok)
		assert.Equal(t, "v2.0.0", version)
	})

	t.Run("should decode an empty object as a present manifest", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte(`{}`)

		// when
		manifest, err := domain.ParseManifest(data)

		// then
		require.NoError(t, err)
		assert.True(t, manifest.Present())
		assert.Equal(t, 0, manifest.Len())
	})

	t.Run("should reject non-string values", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte(`{".": 123}`)

		// when
		_, err := domain.ParseManifest(data)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse manifest")
	})

	t.Run("should reject malformed JSON", func(t *testing.T) {
		t.Parallel()

		// given
		data := []byte(`{".": "1.0.0"`)

		// when
		_, err := domain.ParseManifest(data)

		// then
		require.Error(t, err)
	})
}
