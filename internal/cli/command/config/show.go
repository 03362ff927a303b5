package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/TypoMate/internal/config"
	"github.com/Tomas-vilte/TypoMate/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Println(t.GetMessage("current_config", 0, nil))
			fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━\n")

			fmt.Printf("%s\n", t.GetMessage("language_label", 0, map[string]interface{}{"Lang": cfg.Language}))
			fmt.Printf("%s\n", t.GetMessage("editor_label", 0, map[string]interface{}{"Editor": cfg.Editor}))
			fmt.Printf("%s\n", t.GetMessage("remote_label", 0, map[string]interface{}{"Remote": cfg.DefaultRemote}))
			fmt.Printf("%s\n", t.GetMessage("workers_label", 0, map[string]interface{}{"Workers": cfg.Workers}))

			if cfg.Token() == "" {
				fmt.Println(t.GetMessage("token_not_set", 0, nil))
			} else {
				fmt.Println(t.GetMessage("token_set", 0, nil))
			}
			return nil
		},
	}
}
