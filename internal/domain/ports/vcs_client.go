package ports

import (
	"context"

	"github.com/Tomas-vilte/TypoMate/internal/domain/models"
)

// VCSClient define los métodos para interactuar con la API de la plataforma
// de revisión de código.
type VCSClient interface {
	// CreateIssue crea un issue y devuelve su número.
	CreateIssue(ctx context.Context, title, body string) (int, error)
	// CreatePullRequest crea un PR desde head hacia base.
	CreatePullRequest(ctx context.Context, title, body, head, base string) (models.PullRequestRef, error)
}

// VCSClientFactory construye un cliente para un repositorio puntual. El
// propietario y el nombre recién se conocen al momento de enviar.
type VCSClientFactory func(owner, repo string) VCSClient
