package git

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	domainerrors "github.com/Tomas-vilte/TypoMate/internal/domain/errors"
	"github.com/Tomas-vilte/TypoMate/internal/domain/ports"
)

var _ ports.GitService = (*GitService)(nil)

type GitService struct {
	remote string
}

func NewGitService(remote string) *GitService {
	if remote == "" {
		remote = "origin"
	}
	return &GitService{remote: remote}
}

// StagedDiff devuelve el diff del área de staging del repositorio.
func (s *GitService) StagedDiff(ctx context.Context, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--staged")
	cmd.Dir = dir
	var stderr strings.Builder
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return "", domainerrors.NewGitError("diff --staged", dir, strings.TrimSpace(stderr.String()), err)
	}
	return string(output), nil
}

// HasStagedChanges verifica si hay cambios en el área de staging.
func (s *GitService) HasStagedChanges(ctx context.Context, dir string) bool {
	cmd := exec.CommandContext(ctx, "git", "diff", "--staged", "--quiet")
	cmd.Dir = dir
	err := cmd.Run()

	// Si el comando retorna exit status 1, significa que hay cambios staged
	return err != nil && cmd.ProcessState.ExitCode() == 1
}

// CurrentBranch devuelve el nombre simbólico de HEAD al momento de la llamada.
func (s *GitService) CurrentBranch(ctx context.Context, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "symbolic-ref", "--short", "HEAD")
	cmd.Dir = dir
	var stderr strings.Builder
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return "", domainerrors.NewGitError("symbolic-ref", dir, strings.TrimSpace(stderr.String()), err)
	}

	branchName := strings.TrimSpace(string(output))
	if branchName == "" {
		return "", domainerrors.NewGitError("symbolic-ref", dir, "empty branch name", fmt.Errorf("no se pudo detectar el nombre de la branch"))
	}
	return branchName, nil
}

// Commit crea el commit tomando el mensaje desde messageFile, relativo al
// directorio del repositorio.
func (s *GitService) Commit(ctx context.Context, dir string, messageFile string) error {
	cmd := exec.CommandContext(ctx, "git", "commit", "-F", messageFile)
	cmd.Dir = dir
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return domainerrors.NewGitError("commit", dir, strings.TrimSpace(stderr.String()), err)
	}
	return nil
}

// Push empuja localBranch hacia remoteBranch con el refspec local:remoto.
func (s *GitService) Push(ctx context.Context, dir string, localBranch, remoteBranch string) error {
	refspec := fmt.Sprintf("%s:%s", localBranch, remoteBranch)
	cmd := exec.CommandContext(ctx, "git", "push", s.remote, refspec)
	cmd.Dir = dir
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return domainerrors.NewGitError("push", dir, strings.TrimSpace(stderr.String()), err)
	}
	return nil
}

// RepoInfo extrae propietario y nombre del repositorio desde la URL del remoto.
func (s *GitService) RepoInfo(ctx context.Context, dir string) (string, string, error) {
	cmd := exec.CommandContext(ctx, "git", "remote", "get-url", s.remote)
	cmd.Dir = dir
	var stderr strings.Builder
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return "", "", domainerrors.NewGitError("remote get-url", dir, strings.TrimSpace(stderr.String()), err)
	}

	url := strings.TrimSpace(string(output))
	return parseRepoURL(url)
}

var (
	sshRegex   = regexp.MustCompile(`git@([^:]+):([^/]+)/(.+)\.git$`)
	httpsRegex = regexp.MustCompile(`https://([^/]+)/([^/]+)/(.+?)(?:\.git)?$`)
)

func parseRepoURL(url string) (string, string, error) {
	var matches []string
	if sshRegex.MatchString(url) {
		matches = sshRegex.FindStringSubmatch(url)
	} else if httpsRegex.MatchString(url) {
		matches = httpsRegex.FindStringSubmatch(url)
	}

	if len(matches) >= 4 {
		repoName := strings.TrimSuffix(matches[3], ".git")
		return matches[2], repoName, nil
	}

	return "", "", fmt.Errorf("no se pudo extraer el propietario y el repositorio de la URL: %s", url)
}
