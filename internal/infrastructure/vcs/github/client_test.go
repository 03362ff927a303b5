package github

import (
	"context"
	"testing"

	domainerrors "github.com/Tomas-vilte/TypoMate/internal/domain/errors"
	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGitHubClient_CreateIssue(t *testing.T) {
	t.Run("should create the issue and return its number", func(t *testing.T) {
		mockIssues := &MockIssuesService{}
		client := NewGitHubClientWithServices(mockIssues, &MockPRService{}, "octocat", "hello-world")

		expectedRequest := &github.IssueRequest{
			Title: github.Ptr("Fix simple typo: Teh -> The"),
			Body:  github.Ptr("There is a small typo in README.md.\n"),
		}
		mockIssues.On("Create", mock.Anything, "octocat", "hello-world", expectedRequest).
			Return(&github.Issue{Number: github.Ptr(42)}, &github.Response{}, nil)

		number, err := client.CreateIssue(context.Background(), "Fix simple typo: Teh -> The", "There is a small typo in README.md.\n")

		require.NoError(t, err)
		assert.Equal(t, 42, number)
		mockIssues.AssertExpectations(t)
	})

	t.Run("should wrap the platform failure", func(t *testing.T) {
		mockIssues := &MockIssuesService{}
		client := NewGitHubClientWithServices(mockIssues, &MockPRService{}, "octocat", "hello-world")

		mockIssues.On("Create", mock.Anything, "octocat", "hello-world", mock.Anything).
			Return(nil, nil, assert.AnError)

		_, err := client.CreateIssue(context.Background(), "titulo", "cuerpo")

		var platformErr *domainerrors.PlatformError
		require.ErrorAs(t, err, &platformErr)
		assert.Equal(t, "octocat/hello-world", platformErr.Repo)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestGitHubClient_CreatePullRequest(t *testing.T) {
	t.Run("should create the pr from head to base", func(t *testing.T) {
		mockPRs := &MockPRService{}
		client := NewGitHubClientWithServices(&MockIssuesService{}, mockPRs, "octocat", "hello-world")

		expectedRequest := &github.NewPullRequest{
			Title: github.Ptr("docs: Fix simple typo, Teh -> The"),
			Body:  github.Ptr("There is a small typo in README.md.\n"),
			Head:  github.Ptr("bugfix_typo_The"),
			Base:  github.Ptr("main"),
		}
		mockPRs.On("Create", mock.Anything, "octocat", "hello-world", expectedRequest).
			Return(&github.PullRequest{
				Number:  github.Ptr(7),
				HTMLURL: github.Ptr("https://github.com/octocat/hello-world/pull/7"),
			}, &github.Response{}, nil)

		ref, err := client.CreatePullRequest(
			context.Background(),
			"docs: Fix simple typo, Teh -> The",
			"There is a small typo in README.md.\n",
			"bugfix_typo_The",
			"main",
		)

		require.NoError(t, err)
		assert.Equal(t, 7, ref.Number)
		assert.Equal(t, "https://github.com/octocat/hello-world/pull/7", ref.URL)
		mockPRs.AssertExpectations(t)
	})

	t.Run("should wrap the platform failure", func(t *testing.T) {
		mockPRs := &MockPRService{}
		client := NewGitHubClientWithServices(&MockIssuesService{}, mockPRs, "octocat", "hello-world")

		mockPRs.On("Create", mock.Anything, "octocat", "hello-world", mock.Anything).
			Return(nil, nil, assert.AnError)

		_, err := client.CreatePullRequest(context.Background(), "titulo", "cuerpo", "rama", "main")

		var platformErr *domainerrors.PlatformError
		require.ErrorAs(t, err, &platformErr)
		assert.Equal(t, "create pull request", platformErr.Op)
	})
}
