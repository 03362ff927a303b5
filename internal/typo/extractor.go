package typo

import (
	"context"
	"regexp"
	"strings"

	domainerrors "github.com/Tomas-vilte/TypoMate/internal/domain/errors"
	"github.com/Tomas-vilte/TypoMate/internal/domain/models"
	"github.com/Tomas-vilte/TypoMate/internal/domain/ports"
)

// wordPattern captura corridas máximas de letras ASCII; cualquier otro
// caracter corta la palabra.
var wordPattern = regexp.MustCompile(`[a-zA-Z]+`)

type Extractor struct {
	gitService ports.GitService
}

func NewExtractor(gitService ports.GitService) *Extractor {
	return &Extractor{gitService: gitService}
}

// Extract busca el typo en el commit staged del repositorio.
func (e *Extractor) Extract(ctx context.Context, dir string) (models.FixFact, error) {
	diff, err := e.gitService.StagedDiff(ctx, dir)
	if err != nil {
		return models.FixFact{}, err
	}
	return Parse(diff)
}

// Parse aplica la heurística de extracción sobre el texto del diff: los
// archivos salen de los encabezados "--- a/" en orden, y el typo se busca
// únicamente en el primer par de líneas eliminada/agregada. Esto asume que el
// primer hunk contiene la corrección; no es un algoritmo de diff general.
func Parse(diff string) (models.FixFact, error) {
	var filePaths []string
	var delLines []string
	var addLines []string

	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "--- a/") {
			filePaths = append(filePaths, strings.TrimPrefix(line, "--- a/"))
		}
	}
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "--- ") {
			delLines = append(delLines, line[1:])
		} else if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++ ") {
			addLines = append(addLines, line[1:])
		}
	}

	if len(delLines) == 0 || len(addLines) == 0 {
		return models.FixFact{}, domainerrors.ErrNoDiff
	}

	delWords := wordPattern.FindAllString(delLines[0], -1)
	addWords := wordPattern.FindAllString(addLines[0], -1)
	for i := 0; i < len(delWords) && i < len(addWords); i++ {
		if delWords[i] != addWords[i] {
			return models.FixFact{
				OldWord:   delWords[i],
				NewWord:   addWords[i],
				FilePaths: filePaths,
			}, nil
		}
	}

	return models.FixFact{}, domainerrors.ErrNoTypo
}
