package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainerrors "github.com/Tomas-vilte/TypoMate/internal/domain/errors"
	"github.com/Tomas-vilte/TypoMate/internal/domain/models"
	"github.com/Tomas-vilte/TypoMate/internal/domain/ports"
	"github.com/Tomas-vilte/TypoMate/internal/i18n"
	"github.com/Tomas-vilte/TypoMate/internal/typo"
)

// SaveService extrae el typo del commit staged y lo persiste para un envío
// posterior, previa confirmación del operador.
type SaveService struct {
	extractor  *typo.Extractor
	gitService ports.GitService
	store      ports.SaveStore
	chooser    ports.Chooser
	trans      *i18n.Translations
}

func NewSaveService(extractor *typo.Extractor, gitService ports.GitService, store ports.SaveStore, chooser ports.Chooser, trans *i18n.Translations) *SaveService {
	return &SaveService{
		extractor:  extractor,
		gitService: gitService,
		store:      store,
		chooser:    chooser,
		trans:      trans,
	}
}

// SaveChange extrae el fix del diff staged de dir y lo guarda indexado por
// "propietario/nombre". Devuelve el nombre bajo el que quedó guardado.
func (s *SaveService) SaveChange(ctx context.Context, dir string) (string, error) {
	if !s.gitService.HasStagedChanges(ctx, dir) {
		return "", domainerrors.ErrNoDiff
	}

	fact, err := s.extractor.Extract(ctx, dir)
	if err != nil {
		return "", err
	}

	fmt.Println(s.trans.GetMessage("changing_announcement", 0, map[string]interface{}{
		"Old":   fact.OldWord,
		"New":   fact.NewWord,
		"Files": strings.Join(fact.FilePaths, ", "),
	}))

	confirmed, err := s.chooser.Confirm(s.trans.GetMessage("save_confirm_prompt", 0, nil))
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserCancelled) {
			return "", nil
		}
		return "", err
	}
	if !confirmed {
		return "", nil
	}

	owner, name, err := s.gitService.RepoInfo(ctx, dir)
	if err != nil {
		return "", err
	}

	repoName := owner + "/" + name
	if err := s.store.Save(repoName, models.RepoSave{Fix: fact, RepoDir: dir}); err != nil {
		return "", err
	}
	return repoName, nil
}
