package github

import (
	"context"
	"net/http"

	domainerrors "github.com/Tomas-vilte/TypoMate/internal/domain/errors"
	"github.com/Tomas-vilte/TypoMate/internal/domain/models"
	"github.com/Tomas-vilte/TypoMate/internal/domain/ports"
	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

// Subconjuntos de los servicios de go-github que usamos, declarados acá para
// poder inyectar mocks en los tests.
type IssuesService interface {
	Create(ctx context.Context, owner, repo string, issue *github.IssueRequest) (*github.Issue, *github.Response, error)
}

type PullRequestsService interface {
	Create(ctx context.Context, owner, repo string, pull *github.NewPullRequest) (*github.PullRequest, *github.Response, error)
}

type GitHubClient struct {
	issuesService IssuesService
	prService     PullRequestsService
	owner         string
	repo          string
}

func NewGitHubClient(owner, repo, token string) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		issuesService: client.Issues,
		prService:     client.PullRequests,
		owner:         owner,
		repo:          repo,
	}
}

func NewGitHubClientWithServices(
	issuesService IssuesService,
	prService PullRequestsService,
	owner string,
	repo string,
) *GitHubClient {
	return &GitHubClient{
		issuesService: issuesService,
		prService:     prService,
		owner:         owner,
		repo:          repo,
	}
}

// CreateIssue crea un issue en el repositorio y devuelve su número.
func (ghc *GitHubClient) CreateIssue(ctx context.Context, title, body string) (int, error) {
	issue, _, err := ghc.issuesService.Create(ctx, ghc.owner, ghc.repo, &github.IssueRequest{
		Title: github.Ptr(title),
		Body:  github.Ptr(body),
	})
	if err != nil {
		return 0, domainerrors.NewPlatformError("create issue", ghc.owner+"/"+ghc.repo, err)
	}
	return issue.GetNumber(), nil
}

// CreatePullRequest crea un PR desde head hacia base y devuelve su referencia.
func (ghc *GitHubClient) CreatePullRequest(ctx context.Context, title, body, head, base string) (models.PullRequestRef, error) {
	pr, _, err := ghc.prService.Create(ctx, ghc.owner, ghc.repo, &github.NewPullRequest{
		Title: github.Ptr(title),
		Body:  github.Ptr(body),
		Head:  github.Ptr(head),
		Base:  github.Ptr(base),
	})
	if err != nil {
		return models.PullRequestRef{}, domainerrors.NewPlatformError("create pull request", ghc.owner+"/"+ghc.repo, err)
	}

	return models.PullRequestRef{
		Number: pr.GetNumber(),
		URL:    pr.GetHTMLURL(),
	}, nil
}
