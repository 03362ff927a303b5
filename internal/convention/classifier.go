package convention

import (
	"os"
	"path/filepath"

	"github.com/Tomas-vilte/TypoMate/internal/domain/models"
)

// Archivos que señalan el proceso de contribución esperado por el repositorio.
const (
	IssueTemplatePath = ".github/ISSUE_TEMPLATE"
	PRTemplatePath    = ".github/pull_request_template.md"
	ContributingPath  = "CONTRIBUTING.md"
)

// Signals sondea el filesystem del repositorio en busca de marcadores de
// convención. Rutas ausentes simplemente leen como false.
func Signals(repoDir string) models.ConventionSignal {
	return models.ConventionSignal{
		HasIssueTemplate:     pathExists(filepath.Join(repoDir, IssueTemplatePath)),
		HasPRTemplate:        pathExists(filepath.Join(repoDir, PRTemplatePath)),
		HasContributingGuide: pathExists(filepath.Join(repoDir, ContributingPath)),
	}
}

// Classify decide si alcanza con un PR directo o si el repositorio espera un
// issue previo. Cualquier marcador presente fuerza el camino con issue; es una
// heurística deliberadamente conservadora.
func Classify(repoDir string) models.SubmissionMode {
	if Signals(repoDir).Any() {
		return models.ModeIssueThenPR
	}
	return models.ModePlain
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
