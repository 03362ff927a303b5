package save

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tomas-vilte/TypoMate/internal/config"
	domainerrors "github.com/Tomas-vilte/TypoMate/internal/domain/errors"
	"github.com/Tomas-vilte/TypoMate/internal/i18n"
	"github.com/Tomas-vilte/TypoMate/internal/services"
	"github.com/Tomas-vilte/TypoMate/internal/ui"
	"github.com/urfave/cli/v3"
)

type SaveCommandFactory struct {
	saveService *services.SaveService
}

func NewSaveCommandFactory(saveService *services.SaveService) *SaveCommandFactory {
	return &SaveCommandFactory{saveService: saveService}
}

func (f *SaveCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "save",
		Aliases: []string{"sv"},
		Usage:   t.GetMessage("save_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   t.GetMessage("save_dir_flag_usage", 0, nil),
				Value:   ".",
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			dir := command.String("dir")

			repoName, err := f.saveService.SaveChange(ctx, dir)
			if err != nil {
				if errors.Is(err, domainerrors.ErrNoDiff) || errors.Is(err, domainerrors.ErrNoTypo) {
					return fmt.Errorf("%s", t.GetMessage("no_staged_changes", 0, nil))
				}
				return err
			}

			if repoName == "" {
				fmt.Println(t.GetMessage("save_discarded", 0, nil))
				return nil
			}

			fmt.Println(ui.SuccessEmoji, t.GetMessage("save_done", 0, map[string]interface{}{
				"Repo": repoName,
			}))
			return nil
		},
	}
}
