package models

type (
	// FixFact describe la corrección de una sola palabra encontrada en el diff staged.
	// Se crea una vez por repositorio y no se modifica después.
	FixFact struct {
		OldWord   string   `json:"old_word"`
		NewWord   string   `json:"new_word"`
		FilePaths []string `json:"file_paths"`
	}

	// RepoSave es un FixFact junto con el directorio del repositorio al que pertenece.
	RepoSave struct {
		Fix     FixFact `json:"fix"`
		RepoDir string  `json:"repo_dir"`
	}
)

// IsValid verifica los invariantes del FixFact: palabras distintas, no vacías
// y al menos un archivo afectado.
func (f FixFact) IsValid() bool {
	return f.OldWord != "" && f.NewWord != "" && f.OldWord != f.NewWord && len(f.FilePaths) > 0
}
