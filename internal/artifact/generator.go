package artifact

import (
	"fmt"
	"strings"

	"github.com/Tomas-vilte/TypoMate/internal/domain/models"
)

// Los textos generados acá son un contrato: otras herramientas pueden parsear
// frases como "Should read `{new}`". No cambiar la redacción literal.

// RenderCommit genera el mensaje de commit para un PR directo, con formato
// título / línea en blanco / cuerpo.
func RenderCommit(fact models.FixFact) string {
	files := strings.Join(fact.FilePaths, ", ")
	return fmt.Sprintf(
		"docs: Fix simple typo, %s -> %s\n\nThere is a small typo in %s.\n\nShould read `%s` rather than `%s`.\n",
		fact.OldWord, fact.NewWord, files, fact.NewWord, fact.OldWord,
	)
}

// RenderClosingCommit genera el mensaje de commit que cierra el issue ya
// creado en la plataforma.
func RenderClosingCommit(fact models.FixFact, issueNumber int) string {
	files := strings.Join(fact.FilePaths, ", ")
	return fmt.Sprintf(
		"docs: Fix simple typo, %s -> %s\n\nThere is a small typo in %s.\n\nCloses #%d\n",
		fact.OldWord, fact.NewWord, files, issueNumber,
	)
}

// RenderIssue genera el artefacto de issue. La variante completa es un reporte
// estructurado con pasos para reproducir; la corta es un párrafo simple.
func RenderIssue(fact models.FixFact, full bool) models.Artifact {
	files := strings.Join(fact.FilePaths, ", ")
	title := fmt.Sprintf("Fix simple typo: %s -> %s", fact.OldWord, fact.NewWord)

	var body string
	if full {
		body = fmt.Sprintf(
			"# Issue Type\n\n[x] Bug (Typo)\n\n# Steps to Replicate\n\n1. Examine %s.\n2. Search for `%s`.\n\n# Expected Behaviour\n\n1. Should read `%s`.\n",
			files, fact.OldWord, fact.NewWord,
		)
	} else {
		body = fmt.Sprintf(
			"There is a small typo in %s.\nShould read `%s` rather than `%s`.\n",
			files, fact.NewWord, fact.OldWord,
		)
	}

	return models.Artifact{Title: title, Body: body}
}

// BranchForWord deriva el nombre determinístico de la branch de origen a
// partir de la palabra corregida. Repetir el envío del mismo fix produce la
// misma branch.
func BranchForWord(newWord string) string {
	return "bugfix_typo_" + strings.ReplaceAll(newWord, " ", "_")
}
