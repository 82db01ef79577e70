package cmd

import (
	"sync"

	"cdp/worker"
	guardworker "cdp/worker/guard"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "run cdp background workers",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		db := provideDatabase()
		system := provideSystem(rootCmd.Version)

		workers := []worker.Worker{
			guardworker.New(
				system,
				provideLedger(db),
				provideReserveStore(db),
				provideGuardService(system, db),
				providePropertyStore(db),
			),
		}

		wg := sync.WaitGroup{}
		for _, w := range workers {
			wg.Add(1)

			go func(worker worker.Worker) {
				defer wg.Done()
				_ = worker.Run(ctx)
			}(w)
		}

		wg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
