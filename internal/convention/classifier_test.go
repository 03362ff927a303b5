package convention

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Tomas-vilte/TypoMate/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run("should classify plain when no marker exists", func(t *testing.T) {
		repoDir := t.TempDir()

		assert.Equal(t, models.ModePlain, Classify(repoDir))
	})

	t.Run("should classify issue then pr when the issue template directory exists", func(t *testing.T) {
		repoDir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(repoDir, ".github", "ISSUE_TEMPLATE"), 0755))

		assert.Equal(t, models.ModeIssueThenPR, Classify(repoDir))
	})

	t.Run("should classify issue then pr when the issue template is a file", func(t *testing.T) {
		repoDir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(repoDir, ".github"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(repoDir, ".github", "ISSUE_TEMPLATE"), []byte("template"), 0644))

		assert.Equal(t, models.ModeIssueThenPR, Classify(repoDir))
	})

	t.Run("should classify issue then pr when the pr template exists", func(t *testing.T) {
		repoDir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(repoDir, ".github"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(repoDir, ".github", "pull_request_template.md"), []byte("# PR"), 0644))

		assert.Equal(t, models.ModeIssueThenPR, Classify(repoDir))
	})

	t.Run("should classify issue then pr when the contributing guide exists", func(t *testing.T) {
		repoDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(repoDir, "CONTRIBUTING.md"), []byte("# Contributing"), 0644))

		assert.Equal(t, models.ModeIssueThenPR, Classify(repoDir))
	})

	t.Run("should flip back to plain when all markers are removed", func(t *testing.T) {
		repoDir := t.TempDir()
		guide := filepath.Join(repoDir, "CONTRIBUTING.md")
		require.NoError(t, os.WriteFile(guide, []byte("# Contributing"), 0644))
		require.Equal(t, models.ModeIssueThenPR, Classify(repoDir))

		require.NoError(t, os.Remove(guide))

		assert.Equal(t, models.ModePlain, Classify(repoDir))
	})
}

func TestSignals(t *testing.T) {
	t.Run("should report each marker independently", func(t *testing.T) {
		repoDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(repoDir, "CONTRIBUTING.md"), []byte("guide"), 0644))

		signal := Signals(repoDir)

		assert.False(t, signal.HasIssueTemplate)
		assert.False(t, signal.HasPRTemplate)
		assert.True(t, signal.HasContributingGuide)
		assert.True(t, signal.Any())
	})
}
