package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tomas-vilte/TypoMate/internal/artifact"
	"github.com/Tomas-vilte/TypoMate/internal/convention"
	domainerrors "github.com/Tomas-vilte/TypoMate/internal/domain/errors"
	"github.com/Tomas-vilte/TypoMate/internal/domain/models"
	"github.com/Tomas-vilte/TypoMate/internal/domain/ports"
	"github.com/Tomas-vilte/TypoMate/internal/i18n"
	"github.com/Tomas-vilte/TypoMate/internal/ui"
)

// prepareAction enumera las acciones del menú interactivo. El despacho es por
// variante etiquetada, no por mapa de closures.
type prepareAction int

const (
	actionShowFile prepareAction = iota
	actionMakeCommit
	actionMakeFullIssue
	actionMakeShortIssue
	actionSubmitIssue
	actionSubmitCommit
)

type menuEntry struct {
	label  string
	action prepareAction
	path   string // solo para actionShowFile
}

// PrepareService es la variante interactiva del workflow: un loop de acciones
// reversibles sobre los artefactos, hasta que el operador envía o cancela.
// Cada acción sobreescribe su artefacto al regenerarlo, salvo el envío del
// issue, que tiene efecto externo y no debe repetirse sin intención.
type PrepareService struct {
	submitService *SubmitService
	chooser       ports.Chooser
	editor        string
	trans         *i18n.Translations
}

func NewPrepareService(submitService *SubmitService, chooser ports.Chooser, editor string, trans *i18n.Translations) *PrepareService {
	return &PrepareService{
		submitService: submitService,
		chooser:       chooser,
		editor:        editor,
		trans:         trans,
	}
}

// Run ejecuta el loop del menú hasta la cancelación del operador. La
// cancelación vuelve limpia al caller, no es un error.
func (p *PrepareService) Run(ctx context.Context, repoName string, save models.RepoSave) error {
	for {
		entries := p.menuEntries(repoName, save.RepoDir)
		labels := make([]string, len(entries))
		for i, entry := range entries {
			labels[i] = entry.label
		}

		index, err := p.chooser.Choose(p.trans.GetMessage("menu_prompt", 0, nil), labels)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUserCancelled) {
				fmt.Println(p.trans.GetMessage("quit_message", 0, nil))
				return nil
			}
			return err
		}

		if err := p.dispatch(ctx, repoName, save, entries[index]); err != nil {
			return err
		}
	}
}

func (p *PrepareService) dispatch(ctx context.Context, repoName string, save models.RepoSave, entry menuEntry) error {
	switch entry.action {
	case actionShowFile:
		fmt.Println(p.trans.GetMessage("opening_editor", 0, nil))
		return ui.OpenInEditor(save.RepoDir, entry.path, p.editor)

	case actionMakeCommit:
		message := artifact.RenderCommit(save.Fix)
		if err := artifact.WriteRaw(save.RepoDir, artifact.CommitFile, message); err != nil {
			return err
		}
		p.printWritten(artifact.CommitFile)
		return nil

	case actionMakeFullIssue, actionMakeShortIssue:
		issue := artifact.RenderIssue(save.Fix, entry.action == actionMakeFullIssue)
		if err := artifact.WriteFile(save.RepoDir, artifact.IssueFile, issue); err != nil {
			return err
		}
		p.printWritten(artifact.IssueFile)
		return nil

	case actionSubmitIssue:
		issueNumber, err := p.submitService.SubmitIssue(ctx, repoName, save)
		if err != nil {
			return err
		}
		fmt.Println(ui.SuccessEmoji, p.trans.GetMessage("issue_submitted", 0, map[string]interface{}{
			"Number": issueNumber,
		}))
		return nil

	case actionSubmitCommit:
		outcome, err := p.submitService.SubmitCommit(ctx, repoName, save)
		if err != nil {
			return err
		}
		fmt.Println(outcome)
		return nil
	}
	return nil
}

// menuEntries arma el menú según el estado del repositorio: qué plantillas y
// artefactos existen en este momento. Se recalcula en cada vuelta del loop.
func (p *PrepareService) menuEntries(repoName, repoDir string) []menuEntry {
	knownPaths := []string{
		convention.IssueTemplatePath,
		convention.PRTemplatePath,
		convention.ContributingPath,
		artifact.PRFile,
		artifact.IssueFile,
		artifact.CommitFile,
		artifact.NoIssuesFile,
	}

	var entries []menuEntry
	for _, path := range knownPaths {
		if _, err := os.Stat(filepath.Join(repoDir, path)); err == nil {
			fmt.Println(p.trans.GetMessage("has_path", 0, map[string]interface{}{"Repo": repoName, "Path": path}))
			entries = append(entries, menuEntry{
				label:  p.trans.GetMessage("menu_show_file", 0, map[string]interface{}{"Path": path}),
				action: actionShowFile,
				path:   path,
			})
		} else {
			fmt.Println(p.trans.GetMessage("does_not_have_path", 0, map[string]interface{}{"Repo": repoName, "Path": path}))
		}
	}

	entries = append(entries,
		menuEntry{label: p.trans.GetMessage("menu_make_commit", 0, nil), action: actionMakeCommit},
		menuEntry{label: p.trans.GetMessage("menu_make_full_issue", 0, nil), action: actionMakeFullIssue},
		menuEntry{label: p.trans.GetMessage("menu_make_short_issue", 0, nil), action: actionMakeShortIssue},
	)

	hasIssue := pathExists(filepath.Join(repoDir, artifact.IssueFile))
	hasCommit := pathExists(filepath.Join(repoDir, artifact.CommitFile))
	if hasIssue || hasCommit {
		entries = append(entries, menuEntry{label: p.trans.GetMessage("menu_submit_issue", 0, nil), action: actionSubmitIssue})
	}
	if hasCommit {
		entries = append(entries, menuEntry{label: p.trans.GetMessage("menu_submit_commit", 0, nil), action: actionSubmitCommit})
	}
	return entries
}

func (p *PrepareService) printWritten(name string) {
	fmt.Println(ui.SuccessEmoji, p.trans.GetMessage("artifact_written", 0, map[string]interface{}{
		"Path": name,
	}))
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
