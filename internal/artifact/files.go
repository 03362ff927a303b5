package artifact

import (
	"os"
	"path/filepath"
	"strings"

	domainerrors "github.com/Tomas-vilte/TypoMate/internal/domain/errors"
	"github.com/Tomas-vilte/TypoMate/internal/domain/models"
)

// Nombres de los archivos de artefacto en la raíz del repositorio de destino.
// Primera línea título, segunda en blanco, resto cuerpo, UTF-8.
const (
	IssueFile  = "__issue__.txt"
	CommitFile = "__commit__.txt"
	PRFile     = "__pr__.txt"
	// NoIssuesFile marca repositorios que tienen los issues deshabilitados.
	NoIssuesFile = "__no_issues__.txt"
)

// WriteFile persiste un artefacto en el repositorio para el modo interactivo.
// Regenerar un artefacto sobreescribe el archivo.
func WriteFile(repoDir, name string, art models.Artifact) error {
	content := art.Title + "\n\n" + art.Body
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return os.WriteFile(filepath.Join(repoDir, name), []byte(content), 0644)
}

// WriteRaw persiste un mensaje ya formateado como título/blanco/cuerpo, por
// ejemplo un mensaje de commit.
func WriteRaw(repoDir, name, message string) error {
	return os.WriteFile(filepath.Join(repoDir, name), []byte(message), 0644)
}

// LoadFile lee un artefacto desde disco validando el formato estricto: si la
// segunda línea no está en blanco el archivo está malformado.
func LoadFile(path string) (models.Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Artifact{}, err
	}

	parts := strings.SplitN(string(data), "\n", 3)
	if len(parts) < 2 || strings.TrimSpace(parts[1]) != "" {
		return models.Artifact{}, domainerrors.NewMalformedArtifactError(path)
	}

	var body string
	if len(parts) == 3 {
		body = parts[2]
	}

	return models.Artifact{
		Title: strings.TrimSpace(parts[0]),
		Body:  body,
	}, nil
}
