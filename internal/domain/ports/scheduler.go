package ports

import "github.com/Tomas-vilte/TypoMate/internal/domain/models"

// Scheduler encola trabajo a futuro. Desde el punto de vista del core es
// fire-and-forget: encolar nunca falla ni bloquea.
type Scheduler interface {
	Add(task models.TaskDescriptor)
}
