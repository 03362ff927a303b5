package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Tomas-vilte/TypoMate/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSave(dir string) models.RepoSave {
	return models.RepoSave{
		Fix: models.FixFact{
			OldWord:   "Teh",
			NewWord:   "The",
			FilePaths: []string{"README.md"},
		},
		RepoDir: dir,
	}
}

func TestStore(t *testing.T) {
	t.Run("should start empty when the file does not exist", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "saves.json")

		store, err := NewStore(path)

		require.NoError(t, err)
		assert.Empty(t, store.All())
	})

	t.Run("should survive a restart", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "saves.json")
		save := testSave("/tmp/work")

		store, err := NewStore(path)
		require.NoError(t, err)
		require.NoError(t, store.Save("octocat/hello-world", save))

		reopened, err := NewStore(path)
		require.NoError(t, err)

		got, ok := reopened.Get("octocat/hello-world")
		require.True(t, ok)
		assert.Equal(t, save, got)
	})

	t.Run("should overwrite the previous save of the same repository", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "saves.json")
		store, err := NewStore(path)
		require.NoError(t, err)

		first := testSave("/tmp/uno")
		second := testSave("/tmp/dos")
		require.NoError(t, store.Save("octocat/hello-world", first))
		require.NoError(t, store.Save("octocat/hello-world", second))

		got, ok := store.Get("octocat/hello-world")
		require.True(t, ok)
		assert.Equal(t, "/tmp/dos", got.RepoDir)
		assert.Len(t, store.All(), 1)
	})

	t.Run("should delete a processed save from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "saves.json")
		store, err := NewStore(path)
		require.NoError(t, err)
		require.NoError(t, store.Save("octocat/hello-world", testSave("/tmp/work")))

		require.NoError(t, store.Delete("octocat/hello-world"))

		_, ok := store.Get("octocat/hello-world")
		assert.False(t, ok)

		reopened, err := NewStore(path)
		require.NoError(t, err)
		assert.Empty(t, reopened.All())
	})

	t.Run("should create the parent directory on demand", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "anidado", "saves.json")

		_, err := NewStore(path)

		require.NoError(t, err)
		assert.DirExists(t, filepath.Dir(path))
	})

	t.Run("should fail on a corrupted file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "saves.json")
		require.NoError(t, os.WriteFile(path, []byte("{asi no"), 0644))

		_, err := NewStore(path)

		assert.Error(t, err)
	})

	t.Run("should return an independent copy from All", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "saves.json")
		store, err := NewStore(path)
		require.NoError(t, err)
		require.NoError(t, store.Save("octocat/hello-world", testSave("/tmp/work")))

		all := store.All()
		delete(all, "octocat/hello-world")

		_, ok := store.Get("octocat/hello-world")
		assert.True(t, ok)
	})
}
