package ports

import "github.com/Tomas-vilte/TypoMate/internal/domain/models"

// SaveStore persiste los RepoSave entre ejecuciones, indexados por nombre de
// repositorio. Se carga al inicio del proceso y se vuelca en cada Save.
type SaveStore interface {
	Get(repoName string) (models.RepoSave, bool)
	Save(repoName string, save models.RepoSave) error
	// All devuelve una copia de todos los saves pendientes.
	All() map[string]models.RepoSave
	// Delete elimina el save de un repositorio ya procesado.
	Delete(repoName string) error
}
