package gitlab //nolint:testpackage // tests unexported functions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/bumpwatch/domain"
)

func TestGitLabProvider(t *testing.T) {
	t.Parallel()

	t.Run("Name", func(t *testing.T) {
		t.Parallel()

		t.Run("should return gitlab", func(t *testing.T) {
			t.Parallel()

			// given
			p := New("token")

			// when
			name := p.Name()

			// then
			assert.Equal(t, "gitlab", name)
		})
	})

	t.Run("MatchesURL", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			url      string
			expected bool
		}{
			{
				name:     "should match HTTPS GitLab URL",
				url:      "https://gitlab.com/org/repo.git",
				expected: true,
			},
			{
				name:     "should match SSH GitLab URL",
				url:      "git@gitlab.com:org/repo.git",
				expected: true,
			},
			{
				name:     "should not match GitHub URL",
				url:      "https://github.com/org/repo.git",
				expected: false,
			},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				// given
				p := New("token")

				// when
				result := p.MatchesURL(tt.url)

				// then
				assert.Equal(t, tt.expected, result)
			})
		}
	})

	t.Run("AuthToken", func(t *testing.T) {
		t.Parallel()

		t.Run("should return the configured token", func(t *testing.T) {
			t.Parallel()

			// given
			p := New("glpat-secret")

			// when
			token := p.AuthToken()

			// then
			assert.Equal(t, "glpat-secret", token)
		})
	})

	t.Run("projectID", func(t *testing.T) {
		t.Parallel()

		t.Run("should join organization and name with a slash", func(t *testing.T) {
			t.Parallel()

			// given
			p := New("token").(*Provider)
			repo := domain.Repository{Organization: "my-group", Name: "my-project"}

			// when
			pid := p.projectID(repo)

			// then
			assert.Equal(t, "my-group/my-project", pid)
		})
	})
}
