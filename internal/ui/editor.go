package ui

import (
	"fmt"
	"os"
	"os/exec"
)

// OpenInEditor abre path en el editor del operador, bloqueando hasta que lo
// cierre. El path es relativo al directorio del repositorio.
func OpenInEditor(repoDir, path, editor string) error {
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vim"
	}

	cmd := exec.Command(editor, path)
	cmd.Dir = repoDir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("error al abrir el editor '%s': %w", editor, err)
	}
	return nil
}
