package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Tomas-vilte/TypoMate/internal/artifact"
	"github.com/Tomas-vilte/TypoMate/internal/convention"
	domainerrors "github.com/Tomas-vilte/TypoMate/internal/domain/errors"
	"github.com/Tomas-vilte/TypoMate/internal/domain/models"
	"github.com/Tomas-vilte/TypoMate/internal/domain/ports"
)

// SubmitService orquesta el envío de un fix: clasificar → generar artefactos
// → commit/push → (issue) → PR. Todos los pasos de un repositorio son
// secuenciales; la exclusividad sobre el directorio es obligación del caller.
type SubmitService struct {
	gitService ports.GitService
	vcsFactory ports.VCSClientFactory
}

func NewSubmitService(gitService ports.GitService, vcsFactory ports.VCSClientFactory) *SubmitService {
	return &SubmitService{
		gitService: gitService,
		vcsFactory: vcsFactory,
	}
}

// SubmitAuto decide el camino según las convenciones del repositorio y lo
// ejecuta. Devuelve el resultado legible para el operador.
func (s *SubmitService) SubmitAuto(ctx context.Context, repoName string, save models.RepoSave) (string, error) {
	if convention.Classify(save.RepoDir) == models.ModePlain {
		return s.PlainPR(ctx, repoName, save)
	}
	return s.FullPR(ctx, repoName, save)
}

// PlainPR genera el commit, lo empuja y crea el PR, sin issue de por medio.
func (s *SubmitService) PlainPR(ctx context.Context, repoName string, save models.RepoSave) (string, error) {
	message := artifact.RenderCommit(save.Fix)
	if err := artifact.WriteRaw(save.RepoDir, artifact.CommitFile, message); err != nil {
		return "", err
	}
	return s.SubmitCommit(ctx, repoName, save)
}

// FullPR crea primero el issue, regenera el commit para que lo cierre, y
// recién después empuja y crea el PR.
func (s *SubmitService) FullPR(ctx context.Context, repoName string, save models.RepoSave) (string, error) {
	issue := artifact.RenderIssue(save.Fix, true)
	if err := artifact.WriteFile(save.RepoDir, artifact.IssueFile, issue); err != nil {
		return "", err
	}
	if _, err := s.SubmitIssue(ctx, repoName, save); err != nil {
		return "", err
	}
	return s.SubmitCommit(ctx, repoName, save)
}

// SubmitIssue sube el artefacto de issue a la plataforma y reescribe el
// artefacto de commit para que cierre ese issue. Tiene efecto externo: no
// repetir sin intención del operador.
func (s *SubmitService) SubmitIssue(ctx context.Context, repoName string, save models.RepoSave) (int, error) {
	issue, err := artifact.LoadFile(filepath.Join(save.RepoDir, artifact.IssueFile))
	if err != nil {
		return 0, err
	}

	issueNumber, err := s.vcsFor(repoName).CreateIssue(ctx, issue.Title, issue.Body)
	if err != nil {
		return 0, err
	}

	message := artifact.RenderClosingCommit(save.Fix, issueNumber)
	if err := artifact.WriteRaw(save.RepoDir, artifact.CommitFile, message); err != nil {
		return 0, err
	}
	return issueNumber, nil
}

// SubmitCommit empuja el commit preparado y crea el PR. Las fallas de git y
// de la plataforma se degradan a strings descriptivos para que un lote de
// repositorios pueda seguir después de una falla; no hay reintentos.
func (s *SubmitService) SubmitCommit(ctx context.Context, repoName string, save models.RepoSave) (string, error) {
	commit, err := artifact.LoadFile(filepath.Join(save.RepoDir, artifact.CommitFile))
	if err != nil {
		return "", err
	}

	fromBranch := artifact.BranchForWord(save.Fix.NewWord)

	pullRequest, err := s.pushAndCreatePR(ctx, repoName, save, commit, fromBranch)
	if err != nil {
		var gitErr *domainerrors.GitError
		if errors.As(err, &gitErr) {
			return fmt.Sprintf("Failed to commit for %s.", repoName), nil
		}
		var platformErr *domainerrors.PlatformError
		if errors.As(err, &platformErr) {
			return fmt.Sprintf("Failed to create pr for %s.", repoName), nil
		}
		return "", err
	}

	return fmt.Sprintf("Created PR #%d view at %s.", pullRequest.Number, pullRequest.URL), nil
}

func (s *SubmitService) pushAndCreatePR(ctx context.Context, repoName string, save models.RepoSave, commit models.Artifact, fromBranch string) (models.PullRequestRef, error) {
	// La branch de destino es el HEAD simbólico leído en este momento, no la
	// branch por defecto del repositorio.
	toBranch, err := s.gitService.CurrentBranch(ctx, save.RepoDir)
	if err != nil {
		return models.PullRequestRef{}, err
	}

	if err := s.gitService.Commit(ctx, save.RepoDir, artifact.CommitFile); err != nil {
		return models.PullRequestRef{}, err
	}

	if err := s.gitService.Push(ctx, save.RepoDir, toBranch, fromBranch); err != nil {
		return models.PullRequestRef{}, err
	}

	return s.vcsFor(repoName).CreatePullRequest(ctx, commit.Title, commit.Body, fromBranch, toBranch)
}

func (s *SubmitService) vcsFor(repoName string) ports.VCSClient {
	owner, name := SplitRepoName(repoName)
	return s.vcsFactory(owner, name)
}

// SplitRepoName separa "propietario/nombre"; sin barra, el propietario queda
// vacío.
func SplitRepoName(repoName string) (string, string) {
	if idx := strings.Index(repoName, "/"); idx >= 0 {
		return repoName[:idx], repoName[idx+1:]
	}
	return "", repoName
}
