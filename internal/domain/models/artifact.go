package models

type (
	// Artifact es el par (título, cuerpo) de un issue o pull request.
	// Los artefactos son texto transitorio que viaja entre las etapas del
	// workflow; la persistencia en archivo es solo una capa de durabilidad
	// para el modo interactivo.
	Artifact struct {
		Title string
		Body  string
	}

	// PullRequestRef identifica un PR ya creado en la plataforma.
	PullRequestRef struct {
		Number int
		URL    string
	}
)
