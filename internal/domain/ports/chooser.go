package ports

// Chooser presenta opciones a un operador humano y devuelve la elegida.
// La cancelación se señala con errors.ErrUserCancelled, no es una falla.
type Chooser interface {
	// Choose muestra las opciones numeradas y devuelve el índice elegido.
	Choose(prompt string, options []string) (int, error)
	// Confirm hace una pregunta de sí o no.
	Confirm(prompt string) (bool, error)
}
