package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Tomas-vilte/TypoMate/internal/cli/command/batch"
	"github.com/Tomas-vilte/TypoMate/internal/cli/command/config"
	"github.com/Tomas-vilte/TypoMate/internal/cli/command/prepare"
	"github.com/Tomas-vilte/TypoMate/internal/cli/command/save"
	"github.com/Tomas-vilte/TypoMate/internal/cli/command/submit"
	"github.com/Tomas-vilte/TypoMate/internal/cli/registry"
	cfg "github.com/Tomas-vilte/TypoMate/internal/config"
	"github.com/Tomas-vilte/TypoMate/internal/domain/ports"
	"github.com/Tomas-vilte/TypoMate/internal/i18n"
	"github.com/Tomas-vilte/TypoMate/internal/infrastructure/git"
	"github.com/Tomas-vilte/TypoMate/internal/infrastructure/storage"
	"github.com/Tomas-vilte/TypoMate/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/TypoMate/internal/scheduler"
	"github.com/Tomas-vilte/TypoMate/internal/services"
	"github.com/Tomas-vilte/TypoMate/internal/typo"
	"github.com/Tomas-vilte/TypoMate/internal/ui"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	gitService := git.NewGitService(cfgApp.DefaultRemote)
	store, err := storage.NewStore("")
	if err != nil {
		return nil, err
	}

	vcsFactory := ports.VCSClientFactory(func(owner, repo string) ports.VCSClient {
		return github.NewGitHubClient(owner, repo, cfgApp.Token())
	})

	chooser := ui.NewStdinChooser(translations)
	extractor := typo.NewExtractor(gitService)

	submitService := services.NewSubmitService(gitService, vcsFactory)
	saveService := services.NewSaveService(extractor, gitService, store, chooser, translations)
	prepareService := services.NewPrepareService(submitService, chooser, cfgApp.Editor, translations)

	sched := scheduler.New(cfgApp.Workers)
	batchService := services.NewBatchService(submitService, store, sched, translations)
	if err := batchService.RegisterHandlers(sched); err != nil {
		return nil, err
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("save", save.NewSaveCommandFactory(saveService)); err != nil {
		log.Fatalf("Error al registrar el comando 'save': %v", err)
	}

	if err := registerCommand.Register("submit", submit.NewSubmitCommandFactory(submitService, gitService, store, chooser)); err != nil {
		log.Fatalf("Error al registrar el comando 'submit': %v", err)
	}

	if err := registerCommand.Register("prepare", prepare.NewPrepareCommandFactory(prepareService, gitService, store)); err != nil {
		log.Fatalf("Error al registrar el comando 'prepare': %v", err)
	}

	if err := registerCommand.Register("batch", batch.NewBatchCommandFactory(batchService, sched)); err != nil {
		log.Fatalf("Error al registrar el comando 'batch': %v", err)
	}

	if err := registerCommand.Register("config", config.NewConfigCommandFactory()); err != nil {
		log.Fatalf("Error al registrar el comando 'config': %v", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:                  "typomate",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version,
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
	}, nil
}

// version se sobreescribe en el build con -ldflags.
var version = "v0.1.0"
