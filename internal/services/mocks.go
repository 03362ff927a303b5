package services

import (
	"context"

	"github.com/Tomas-vilte/TypoMate/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockGitService struct {
	mock.Mock
}

func (m *MockGitService) StagedDiff(ctx context.Context, dir string) (string, error) {
	args := m.Called(ctx, dir)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) HasStagedChanges(ctx context.Context, dir string) bool {
	args := m.Called(ctx, dir)
	return args.Bool(0)
}

func (m *MockGitService) CurrentBranch(ctx context.Context, dir string) (string, error) {
	args := m.Called(ctx, dir)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) Commit(ctx context.Context, dir string, messageFile string) error {
	args := m.Called(ctx, dir, messageFile)
	return args.Error(0)
}

func (m *MockGitService) Push(ctx context.Context, dir string, localBranch, remoteBranch string) error {
	args := m.Called(ctx, dir, localBranch, remoteBranch)
	return args.Error(0)
}

func (m *MockGitService) RepoInfo(ctx context.Context, dir string) (string, string, error) {
	args := m.Called(ctx, dir)
	return args.String(0), args.String(1), args.Error(2)
}

type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) CreateIssue(ctx context.Context, title, body string) (int, error) {
	args := m.Called(ctx, title, body)
	return args.Int(0), args.Error(1)
}

func (m *MockVCSClient) CreatePullRequest(ctx context.Context, title, body, head, base string) (models.PullRequestRef, error) {
	args := m.Called(ctx, title, body, head, base)
	return args.Get(0).(models.PullRequestRef), args.Error(1)
}

type MockSaveStore struct {
	mock.Mock
}

func (m *MockSaveStore) Get(repoName string) (models.RepoSave, bool) {
	args := m.Called(repoName)
	return args.Get(0).(models.RepoSave), args.Bool(1)
}

func (m *MockSaveStore) Save(repoName string, save models.RepoSave) error {
	args := m.Called(repoName, save)
	return args.Error(0)
}

func (m *MockSaveStore) All() map[string]models.RepoSave {
	args := m.Called()
	return args.Get(0).(map[string]models.RepoSave)
}

func (m *MockSaveStore) Delete(repoName string) error {
	args := m.Called(repoName)
	return args.Error(0)
}

type MockChooser struct {
	mock.Mock
}

func (m *MockChooser) Choose(prompt string, options []string) (int, error) {
	args := m.Called(prompt, options)
	return args.Int(0), args.Error(1)
}

func (m *MockChooser) Confirm(prompt string) (bool, error) {
	args := m.Called(prompt)
	return args.Bool(0), args.Error(1)
}

type MockScheduler struct {
	mock.Mock
}

func (m *MockScheduler) Add(task models.TaskDescriptor) {
	m.Called(task)
}
