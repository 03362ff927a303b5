package models

type SubmissionMode string

const (
	// ModePlain indica que alcanza con un pull request directo.
	ModePlain SubmissionMode = "plain"
	// ModeIssueThenPR indica que el repositorio espera un issue antes del PR.
	ModeIssueThenPR SubmissionMode = "issue_then_pr"
)

// ConventionSignal agrupa los marcadores de convención de contribución
// detectados en el repositorio. Se deriva en cada llamada, nunca se cachea.
type ConventionSignal struct {
	HasIssueTemplate     bool
	HasPRTemplate        bool
	HasContributingGuide bool
}

// Any devuelve true si hay al menos un marcador presente.
func (s ConventionSignal) Any() bool {
	return s.HasIssueTemplate || s.HasPRTemplate || s.HasContributingGuide
}
