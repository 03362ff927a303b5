package ports

import "context"

// GitService define las operaciones de git que consume el core. Todas reciben
// el directorio del repositorio porque varios repositorios pueden procesarse
// en paralelo desde el mismo proceso.
type GitService interface {
	// StagedDiff devuelve el diff del área de staging.
	StagedDiff(ctx context.Context, dir string) (string, error)
	// HasStagedChanges verifica si hay cambios en el área de staging.
	HasStagedChanges(ctx context.Context, dir string) bool
	// CurrentBranch devuelve el nombre simbólico de HEAD.
	CurrentBranch(ctx context.Context, dir string) (string, error)
	// Commit crea un commit tomando el mensaje desde un archivo.
	Commit(ctx context.Context, dir string, messageFile string) error
	// Push empuja localBranch hacia remoteBranch en el remoto configurado.
	Push(ctx context.Context, dir string, localBranch, remoteBranch string) error
	// RepoInfo extrae propietario y nombre del repositorio desde la URL del remoto.
	RepoInfo(ctx context.Context, dir string) (owner, name string, err error)
}
