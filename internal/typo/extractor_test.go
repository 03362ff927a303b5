package typo

import (
	"context"
	"errors"
	"testing"

	domainerrors "github.com/Tomas-vilte/TypoMate/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGitService struct {
	mock.Mock
}

func (m *mockGitService) StagedDiff(ctx context.Context, dir string) (string, error) {
	args := m.Called(ctx, dir)
	return args.String(0), args.Error(1)
}

func (m *mockGitService) HasStagedChanges(ctx context.Context, dir string) bool {
	args := m.Called(ctx, dir)
	return args.Bool(0)
}

func (m *mockGitService) CurrentBranch(ctx context.Context, dir string) (string, error) {
	args := m.Called(ctx, dir)
	return args.String(0), args.Error(1)
}

func (m *mockGitService) Commit(ctx context.Context, dir string, messageFile string) error {
	args := m.Called(ctx, dir, messageFile)
	return args.Error(0)
}

func (m *mockGitService) Push(ctx context.Context, dir string, localBranch, remoteBranch string) error {
	args := m.Called(ctx, dir, localBranch, remoteBranch)
	return args.Error(0)
}

func (m *mockGitService) RepoInfo(ctx context.Context, dir string) (string, string, error) {
	args := m.Called(ctx, dir)
	return args.String(0), args.String(1), args.Error(2)
}

const sampleDiff = `diff --git a/README.md b/README.md
index 83db48f..bf269f4 100644
--- a/README.md
+++ b/README.md
@@ -1,3 +1,3 @@
-Teh quick fox
+The quick fox
 jumps over
`

func TestParse(t *testing.T) {
	t.Run("should extract the differing word pair from the first line pair", func(t *testing.T) {
		fact, err := Parse(sampleDiff)

		require.NoError(t, err)
		assert.Equal(t, "Teh", fact.OldWord)
		assert.Equal(t, "The", fact.NewWord)
		assert.Equal(t, []string{"README.md"}, fact.FilePaths)
		assert.True(t, fact.IsValid())
	})

	t.Run("should preserve file path order from the diff headers", func(t *testing.T) {
		diff := "--- a/docs/guide.md\n" +
			"+++ b/docs/guide.md\n" +
			"-recieve data\n" +
			"+receive data\n" +
			"--- a/README.md\n" +
			"+++ b/README.md\n" +
			"-recieve data\n" +
			"+receive data\n"

		fact, err := Parse(diff)

		require.NoError(t, err)
		assert.Equal(t, []string{"docs/guide.md", "README.md"}, fact.FilePaths)
		assert.Equal(t, "recieve", fact.OldWord)
		assert.Equal(t, "receive", fact.NewWord)
	})

	t.Run("should tokenize on any non letter character", func(t *testing.T) {
		diff := "--- a/main.go\n" +
			"+++ b/main.go\n" +
			"-// initalize the server\n" +
			"+// initialize the server\n"

		fact, err := Parse(diff)

		require.NoError(t, err)
		assert.Equal(t, "initalize", fact.OldWord)
		assert.Equal(t, "initialize", fact.NewWord)
	})

	t.Run("should fail with ErrNoDiff when the diff is empty", func(t *testing.T) {
		_, err := Parse("")

		assert.ErrorIs(t, err, domainerrors.ErrNoDiff)
	})

	t.Run("should fail with ErrNoDiff when there are no removed lines", func(t *testing.T) {
		diff := "--- a/README.md\n" +
			"+++ b/README.md\n" +
			"+a brand new line\n"

		_, err := Parse(diff)

		assert.ErrorIs(t, err, domainerrors.ErrNoDiff)
	})

	t.Run("should fail with ErrNoTypo when the first line pair has identical words", func(t *testing.T) {
		diff := "--- a/README.md\n" +
			"+++ b/README.md\n" +
			"-same words here!\n" +
			"+same words here?\n"

		_, err := Parse(diff)

		assert.ErrorIs(t, err, domainerrors.ErrNoTypo)
	})

	t.Run("should only look at the first removed and added lines", func(t *testing.T) {
		diff := "--- a/README.md\n" +
			"+++ b/README.md\n" +
			"-identical line\n" +
			"-teh typo here\n" +
			"+identical line\n" +
			"+the typo here\n"

		_, err := Parse(diff)

		// el typo está en la segunda línea, la heurística no lo ve
		assert.ErrorIs(t, err, domainerrors.ErrNoTypo)
	})
}

func TestExtractor_Extract(t *testing.T) {
	t.Run("should delegate the staged diff to the git service", func(t *testing.T) {
		mockGit := &mockGitService{}
		mockGit.On("StagedDiff", mock.Anything, "/repo/dir").Return(sampleDiff, nil)

		extractor := NewExtractor(mockGit)
		fact, err := extractor.Extract(context.Background(), "/repo/dir")

		require.NoError(t, err)
		assert.Equal(t, "Teh", fact.OldWord)
		mockGit.AssertExpectations(t)
	})

	t.Run("should propagate git errors", func(t *testing.T) {
		mockGit := &mockGitService{}
		gitErr := errors.New("not a git repository")
		mockGit.On("StagedDiff", mock.Anything, "/no/repo").Return("", gitErr)

		extractor := NewExtractor(mockGit)
		_, err := extractor.Extract(context.Background(), "/no/repo")

		assert.ErrorIs(t, err, gitErr)
		mockGit.AssertExpectations(t)
	})
}
