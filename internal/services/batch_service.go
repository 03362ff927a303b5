package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Tomas-vilte/TypoMate/internal/artifact"
	"github.com/Tomas-vilte/TypoMate/internal/convention"
	domainerrors "github.com/Tomas-vilte/TypoMate/internal/domain/errors"
	"github.com/Tomas-vilte/TypoMate/internal/domain/models"
	"github.com/Tomas-vilte/TypoMate/internal/domain/ports"
	"github.com/Tomas-vilte/TypoMate/internal/i18n"
	"github.com/Tomas-vilte/TypoMate/internal/scheduler"
	"github.com/Tomas-vilte/TypoMate/internal/ui"
)

// Nombres de las tareas del lote. Cada tarea opera sobre un solo repositorio;
// el scheduler no corre dos tareas del mismo repositorio a la vez porque cada
// repositorio se encola una única vez.
const (
	TaskSubmit  = "submit"
	TaskPlainPR = "plain_pr"
	TaskFullPR  = "full_pr"
	TaskCleanup = "cleanup"
)

// cleanupPriority corre después de cualquier envío pendiente.
const cleanupPriority = 20

// BatchService procesa todos los fixes guardados a través del scheduler:
// una tarea "submit" por repositorio decide el camino, las tareas
// "plain_pr"/"full_pr" lo ejecutan y "cleanup" borra los artefactos.
type BatchService struct {
	submitService *SubmitService
	store         ports.SaveStore
	sched         ports.Scheduler
	trans         *i18n.Translations
}

func NewBatchService(submitService *SubmitService, store ports.SaveStore, sched ports.Scheduler, trans *i18n.Translations) *BatchService {
	return &BatchService{
		submitService: submitService,
		store:         store,
		sched:         sched,
		trans:         trans,
	}
}

// RegisterHandlers registra las tareas del lote en el scheduler.
func (b *BatchService) RegisterHandlers(s *scheduler.Scheduler) error {
	handlers := map[string]scheduler.Handler{
		TaskSubmit:  b.handleSubmit,
		TaskPlainPR: b.handlePlainPR,
		TaskFullPR:  b.handleFullPR,
		TaskCleanup: b.handleCleanup,
	}
	for name, handler := range handlers {
		if err := s.Register(name, handler); err != nil {
			return err
		}
	}
	return nil
}

// EnqueueAll encola una tarea de envío por cada fix guardado y devuelve
// cuántas encoló.
func (b *BatchService) EnqueueAll() int {
	saves := b.store.All()
	for repoName := range saves {
		b.sched.Add(models.TaskDescriptor{Name: TaskSubmit, RepoName: repoName})
	}
	return len(saves)
}

func (b *BatchService) handleSubmit(ctx context.Context, task models.TaskDescriptor) error {
	save, ok := b.store.Get(task.RepoName)
	if !ok {
		return domainerrors.NewSaveNotFoundError(task.RepoName)
	}

	fmt.Println(b.trans.GetMessage("fix_announcement", 0, map[string]interface{}{
		"Repo":  task.RepoName,
		"Old":   save.Fix.OldWord,
		"New":   save.Fix.NewWord,
		"Files": strings.Join(save.Fix.FilePaths, ", "),
	}))

	next := TaskFullPR
	if convention.Classify(save.RepoDir) == models.ModePlain {
		next = TaskPlainPR
	}
	b.sched.Add(models.TaskDescriptor{Name: next, RepoName: task.RepoName})
	return nil
}

func (b *BatchService) handlePlainPR(ctx context.Context, task models.TaskDescriptor) error {
	return b.runSubmission(ctx, task, b.submitService.PlainPR)
}

func (b *BatchService) handleFullPR(ctx context.Context, task models.TaskDescriptor) error {
	return b.runSubmission(ctx, task, b.submitService.FullPR)
}

func (b *BatchService) runSubmission(ctx context.Context, task models.TaskDescriptor, submit func(context.Context, string, models.RepoSave) (string, error)) error {
	save, ok := b.store.Get(task.RepoName)
	if !ok {
		return domainerrors.NewSaveNotFoundError(task.RepoName)
	}

	outcome, err := submit(ctx, task.RepoName, save)
	if err != nil {
		return err
	}
	fmt.Println(ui.Info.Sprint(outcome))

	b.sched.Add(models.TaskDescriptor{
		Name:        TaskCleanup,
		RepoName:    task.RepoName,
		Interactive: true,
		Priority:    cleanupPriority,
	})
	return nil
}

// handleCleanup borra los archivos de artefacto del repositorio y descarta el
// save ya procesado.
func (b *BatchService) handleCleanup(ctx context.Context, task models.TaskDescriptor) error {
	save, ok := b.store.Get(task.RepoName)
	if !ok {
		return nil
	}

	for _, name := range []string{artifact.IssueFile, artifact.CommitFile, artifact.PRFile} {
		if err := os.Remove(filepath.Join(save.RepoDir, name)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return b.store.Delete(task.RepoName)
}
