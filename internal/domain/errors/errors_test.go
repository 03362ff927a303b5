package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMalformedArtifactError(t *testing.T) {
	t.Run("should name the offending file", func(t *testing.T) {
		err := NewMalformedArtifactError("__issue__.txt")

		assert.Equal(t, "needs to be a blank second line for __issue__.txt", err.Error())
	})
}

func TestGitError(t *testing.T) {
	t.Run("should include the captured stderr", func(t *testing.T) {
		cause := errors.New("exit status 128")
		err := NewGitError("push", "/tmp/work", "fatal: no configured push destination", cause)

		assert.Contains(t, err.Error(), "git push failed in /tmp/work")
		assert.Contains(t, err.Error(), "fatal: no configured push destination")
		assert.ErrorIs(t, err, cause)
	})

	t.Run("should format without stderr", func(t *testing.T) {
		cause := errors.New("exit status 1")
		err := NewGitError("commit", "/tmp/work", "", cause)

		assert.Equal(t, "git commit failed in /tmp/work: exit status 1", err.Error())
	})
}

func TestPlatformError(t *testing.T) {
	t.Run("should unwrap to the api failure", func(t *testing.T) {
		cause := errors.New("403 rate limit exceeded")
		err := NewPlatformError("create issue", "octocat/hello-world", cause)

		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "platform create issue failed for 'octocat/hello-world'")
	})
}

func TestSaveNotFoundError(t *testing.T) {
	t.Run("should name the repository", func(t *testing.T) {
		err := NewSaveNotFoundError("octocat/hello-world")

		assert.Equal(t, "no saved fix for repository 'octocat/hello-world'", err.Error())
	})
}
