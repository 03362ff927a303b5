package prepare

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/TypoMate/internal/config"
	"github.com/Tomas-vilte/TypoMate/internal/domain/ports"
	"github.com/Tomas-vilte/TypoMate/internal/i18n"
	"github.com/Tomas-vilte/TypoMate/internal/services"
	"github.com/urfave/cli/v3"
)

type PrepareCommandFactory struct {
	prepareService *services.PrepareService
	gitService     ports.GitService
	store          ports.SaveStore
}

func NewPrepareCommandFactory(prepareService *services.PrepareService, gitService ports.GitService, store ports.SaveStore) *PrepareCommandFactory {
	return &PrepareCommandFactory{
		prepareService: prepareService,
		gitService:     gitService,
		store:          store,
	}
}

func (f *PrepareCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "prepare",
		Aliases: []string{"p"},
		Usage:   t.GetMessage("prepare_command_usage", 0, nil),
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
		},
		Action: func(ctx context.Context, command *cli.Command) error {
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

			return f.prepareService.Run(ctx, repoName, save)
		},
	}
}
