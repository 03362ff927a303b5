package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/TypoMate/internal/config"
	"github.com/Tomas-vilte/TypoMate/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetEditorCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-editor",
		Usage: t.GetMessage("config_set_editor_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "editor",
				Aliases:  []string{"e"},
				Usage:    t.GetMessage("config_set_editor_flag_usage", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			cfg.Editor = command.String("editor")
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			fmt.Printf("%s\n", t.GetMessage("editor_configured", 0, map[string]interface{}{"Editor": cfg.Editor}))
			return nil
		},
	}
}
