package cmd //nolint:testpackage // tests unexported functions

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/bumpwatch/config"
)

// newFlagCommand builds a bare command carrying the persistent flags the
// helpers read.
func newFlagCommand(t *testing.T) *cobra.Command {
	t.Helper()

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("token", "", "")
	return cmd
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestResolveAuthToken(t *testing.T) {
	t.Run("should prefer the token flag", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := newFlagCommand(t)
		require.NoError(t, cmd.Flags().Set("token", "flag-token"))
		cfg := config.Default()
		cfg.Provider.Token = "config-token"

		// when
		token := resolveAuthToken(cmd, cfg, providerGitHub)

		// then
		assert.Equal(t, "flag-token", token)
	})

	t.Run("should fall back to the config token", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := newFlagCommand(t)
		cfg := config.Default()
		cfg.Provider.Token = "config-token"

		// when
		token := resolveAuthToken(cmd, cfg, providerGitHub)

		// then
		assert.Equal(t, "config-token", token)
	})

	t.Run("should fall back to the provider environment variable", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("GITLAB_TOKEN", "env-token")
		cmd := newFlagCommand(t)

		// when
		token := resolveAuthToken(cmd, config.Default(), providerGitLab)

		// then
		assert.Equal(t, "env-token", token)
	})

	t.Run("should return empty for an unknown provider without other sources", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := newFlagCommand(t)

		// when
		token := resolveAuthToken(cmd, config.Default(), "bitbucket")

		// then
		assert.Empty(t, token)
	})
}

func TestBuildCheckOptions(t *testing.T) {
	t.Parallel()

	t.Run("should take the manifest path from the flag when set", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := newFlagCommand(t)
		cmd.Flags().String("manifest", "", "")
		cmd.Flags().Bool("dry-run", false, "")
		cmd.Flags().Bool("verbose", false, "")
		require.NoError(t, cmd.Flags().Set("manifest", "custom/versions.json"))

		// when
		opts := buildCheckOptions(cmd, config.Default())

		// then
		assert.Equal(t, "custom/versions.json", opts.ManifestPath)
	})

	t.Run("should carry the report settings from the config", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := newFlagCommand(t)
		cmd.Flags().String("manifest", "", "")
		cmd.Flags().Bool("dry-run", false, "")
		cmd.Flags().Bool("verbose", false, "")
		cfg := config.Default()
		cfg.Report.Comment = false
		cfg.Report.Label = "breaking"

		// when
		opts := buildCheckOptions(cmd, cfg)

		// then
		assert.Equal(t, config.DefaultManifestPath, opts.ManifestPath)
		assert.False(t, opts.Comment)
		assert.Equal(t, "breaking", opts.Label)
	})
}
