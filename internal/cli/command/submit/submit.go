package submit

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/TypoMate/internal/config"
	"github.com/Tomas-vilte/TypoMate/internal/convention"
	"github.com/Tomas-vilte/TypoMate/internal/domain/models"
	"github.com/Tomas-vilte/TypoMate/internal/domain/ports"
	"github.com/Tomas-vilte/TypoMate/internal/i18n"
	"github.com/Tomas-vilte/TypoMate/internal/services"
	"github.com/urfave/cli/v3"
)

type SubmitCommandFactory struct {
	submitService *services.SubmitService
	gitService    ports.GitService
	store         ports.SaveStore
	chooser       ports.Chooser
}

func NewSubmitCommandFactory(submitService *services.SubmitService, gitService ports.GitService, store ports.SaveStore, chooser ports.Chooser) *SubmitCommandFactory {
	return &SubmitCommandFactory{
		submitService: submitService,
		gitService:    gitService,
		store:         store,
		chooser:       chooser,
	}
}

func (f *SubmitCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "submit",
		Aliases: []string{"sub"},
		Usage:   t.GetMessage("submit_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "repo",
				Aliases: []string{"r"},
				Usage:   t.GetMessage("submit_repo_flag_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   t.GetMessage("submit_dir_flag_usage", 0, nil),
				Value:   ".",
			},
			&cli.BoolFlag{
				Name:  "plain",
				Usage: t.GetMessage("submit_plain_flag_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "full",
				Usage: t.GetMessage("submit_full_flag_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   t.GetMessage("submit_yes_flag_usage", 0, nil),
			},
		},
		Action: f.createAction(t),
	}
}

func (f *SubmitCommandFactory) createAction(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		repoName := command.String("repo")
		if repoName == "" {
			owner, name, err := f.gitService.RepoInfo(ctx, command.String("dir"))
			if err != nil {
				return err
			}
			repoName = owner + "/" + name
		}

		save, ok := f.store.Get(repoName)
		if !ok {
			return fmt.Errorf("%s", t.GetMessage("no_save_found", 0, map[string]interface{}{
				"Repo": repoName,
			}))
		}

		fmt.Println(t.GetMessage("fix_announcement", 0, map[string]interface{}{
			"Repo":  repoName,
			"Old":   save.Fix.OldWord,
			"New":   save.Fix.NewWord,
			"Files": strings.Join(save.Fix.FilePaths, ", "),
		}))

		plain, err := f.resolveMode(command, t, save)
		if err != nil {
			return err
		}

		outcome, err := runWithSpinner(ctx, t, func(ctx context.Context) (string, error) {
			if plain {
				return f.submitService.PlainPR(ctx, repoName, save)
			}
			return f.submitService.FullPR(ctx, repoName, save)
		})
		if err != nil {
			return err
		}

		fmt.Println(outcome)
		return nil
	}
}

// resolveMode decide el camino de envío: flags explícitas, o la clasificación
// de convenciones confirmada por el operador salvo que pase --yes.
func (f *SubmitCommandFactory) resolveMode(command *cli.Command, t *i18n.Translations, save models.RepoSave) (bool, error) {
	if command.Bool("plain") {
		return true, nil
	}
	if command.Bool("full") {
		return false, nil
	}

	suggestPlain := convention.Classify(save.RepoDir) == models.ModePlain
	if command.Bool("yes") {
		return suggestPlain, nil
	}

	prompt := "complex_repo_prompt"
	if suggestPlain {
		prompt = "suggest_plain_prompt"
	}
	agreed, err := f.chooser.Confirm(t.GetMessage(prompt, 0, nil))
	if err != nil {
		return false, err
	}

	// De acuerdo con la sugerencia plain, o insistiendo con plain en un
	// repositorio complejo: ambas respuestas afirmativas terminan en plain.
	return agreed, nil
}
