package batch

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/TypoMate/internal/config"
	"github.com/Tomas-vilte/TypoMate/internal/i18n"
	"github.com/Tomas-vilte/TypoMate/internal/scheduler"
	"github.com/Tomas-vilte/TypoMate/internal/services"
	"github.com/Tomas-vilte/TypoMate/internal/ui"
	"github.com/urfave/cli/v3"
)

type BatchCommandFactory struct {
	batchService *services.BatchService
	sched        *scheduler.Scheduler
}

func NewBatchCommandFactory(batchService *services.BatchService, sched *scheduler.Scheduler) *BatchCommandFactory {
	return &BatchCommandFactory{
		batchService: batchService,
		sched:        sched,
	}
}

func (f *BatchCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "batch",
		Aliases: []string{"b"},
		Usage:   t.GetMessage("batch_command_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			count := f.batchService.EnqueueAll()
			if count == 0 {
				fmt.Println(t.GetMessage("batch_empty", 0, nil))
				return nil
			}

			fmt.Println(t.GetMessage("batch_enqueued", 0, map[string]interface{}{
				"Count": count,
			}))

			spin := ui.NewSmartSpinner(t.GetMessage("submitting_fix", 0, nil))
			spin.Start()
			defer spin.Stop()

			f.sched.Start(ctx)
			f.sched.Stop()
			return nil
		},
	}
}
