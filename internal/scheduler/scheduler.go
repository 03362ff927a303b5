package scheduler

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/Tomas-vilte/TypoMate/internal/domain/models"
	"github.com/Tomas-vilte/TypoMate/internal/domain/ports"
)

var _ ports.Scheduler = (*Scheduler)(nil)

// Handler procesa una tarea encolada. Los errores se loguean y la cola sigue
// con la próxima tarea; no hay reintentos.
type Handler func(ctx context.Context, task models.TaskDescriptor) error

// Scheduler es una cola de tareas en memoria con un pool fijo de workers.
// Cada tarea es la unidad de trabajo completa de un repositorio: el scheduler
// no debe encolar dos tareas contra el mismo directorio a la vez.
type Scheduler struct {
	mu       sync.Mutex
	cond     *sync.Cond
	pending  []models.TaskDescriptor
	handlers map[string]Handler
	workers  int
	wg       sync.WaitGroup
	stopped  bool
	started  bool
}

func New(workers int) *Scheduler {
	if workers < 1 {
		workers = 1
	}
	s := &Scheduler{
		handlers: make(map[string]Handler),
		workers:  workers,
	}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Register asocia un handler al nombre de tarea. Registrar dos veces el mismo
// nombre es un error de programación.
func (s *Scheduler) Register(name string, handler Handler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.handlers[name]; exists {
		return fmt.Errorf("handler '%s' ya registrado", name)
	}
	s.handlers[name] = handler
	return nil
}

// Add encola una tarea. Prioridad menor se atiende primero; a igual prioridad
// el orden es FIFO. Nunca bloquea. Durante el drenado de Stop se siguen
// aceptando tareas: los handlers encolan trabajo de seguimiento y el worker
// que las agrega sigue vivo para atenderlas.
func (s *Scheduler) Add(task models.TaskDescriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = append(s.pending, task)
	sort.SliceStable(s.pending, func(i, j int) bool {
		return s.pending[i].Priority < s.pending[j].Priority
	})
	s.cond.Signal()
}

// Start lanza los workers. Las tareas encoladas antes de Start quedan
// esperando hasta este momento.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker(ctx)
	}
}

// Stop deja de aceptar tareas, drena las pendientes y espera a los workers.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.cond.Broadcast()
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Scheduler) worker(ctx context.Context) {
	defer s.wg.Done()

	for {
		task, ok := s.next()
		if !ok {
			return
		}

		handler, found := s.handler(task.Name)
		if !found {
			log.Printf("scheduler: sin handler para la tarea '%s'", task.Name)
			continue
		}

		if err := handler(ctx, task); err != nil {
			log.Printf("scheduler: tarea '%s' para '%s' falló: %v", task.Name, task.RepoName, err)
		}
	}
}

// next bloquea hasta que haya una tarea pendiente o el scheduler se detenga.
// Tras Stop sigue entregando tareas hasta vaciar la cola.
func (s *Scheduler) next() (models.TaskDescriptor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.pending) == 0 {
		if s.stopped {
			return models.TaskDescriptor{}, false
		}
		s.cond.Wait()
	}

	task := s.pending[0]
	s.pending = s.pending[1:]
	return task, true
}

func (s *Scheduler) handler(name string) (Handler, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handler, found := s.handlers[name]
	return handler, found
}
