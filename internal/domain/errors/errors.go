package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDiff indica que el diff staged está vacío o no tiene pares de
	// líneas eliminadas/agregadas.
	ErrNoDiff = errors.New("could not read diff")

	// ErrNoTypo indica que el primer par de líneas del diff no contiene
	// ninguna palabra distinta.
	ErrNoTypo = errors.New("could not locate typo")

	// ErrUserCancelled señala que el operador decidió abandonar el menú
	// interactivo. No es una falla.
	ErrUserCancelled = errors.New("cancelled by user")
)

// MalformedArtifactError indica que un archivo de artefacto no respeta el
// formato título / línea en blanco / cuerpo.
type MalformedArtifactError struct {
	Path string
}

func (e *MalformedArtifactError) Error() string {
	return fmt.Sprintf("needs to be a blank second line for %s", e.Path)
}

// NewMalformedArtifactError crea un nuevo error de artefacto malformado
func NewMalformedArtifactError(path string) *MalformedArtifactError {
	return &MalformedArtifactError{Path: path}
}

// GitError representa una salida distinta de cero de una invocación de git.
type GitError struct {
	Op     string
	Dir    string
	Stderr string
	Err    error
}

func (e *GitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git %s failed in %s: %v: %s", e.Op, e.Dir, e.Err, e.Stderr)
	}
	return fmt.Sprintf("git %s failed in %s: %v", e.Op, e.Dir, e.Err)
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// NewGitError crea un nuevo error de git
func NewGitError(op, dir, stderr string, err error) *GitError {
	return &GitError{
		Op:     op,
		Dir:    dir,
		Stderr: stderr,
		Err:    err,
	}
}

// PlatformError representa un rechazo de la API de la plataforma de revisión
// (auth, validación, rate limit).
type PlatformError struct {
	Op   string
	Repo string
	Err  error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("platform %s failed for '%s': %v", e.Op, e.Repo, e.Err)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// NewPlatformError crea un nuevo error de plataforma
func NewPlatformError(op, repo string, err error) *PlatformError {
	return &PlatformError{
		Op:   op,
		Repo: repo,
		Err:  err,
	}
}

// SaveNotFoundError indica que no hay un RepoSave guardado para el repositorio.
type SaveNotFoundError struct {
	RepoName string
}

func (e *SaveNotFoundError) Error() string {
	return fmt.Sprintf("no saved fix for repository '%s'", e.RepoName)
}

// NewSaveNotFoundError crea un nuevo error de save no encontrado
func NewSaveNotFoundError(repoName string) *SaveNotFoundError {
	return &SaveNotFoundError{RepoName: repoName}
}
