package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/speclint/internal/infrastructure/watch"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Re-lint a directory whenever a specification document changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServices(cmd)
		if err != nil {
			return err
		}
		dir := args[0]

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var (
			mu      sync.Mutex
			lastErr error
		)
		run := func() error {
			mu.Lock()
			defer mu.Unlock()
			lastErr = lintDir(ctx, os.Stdout, services, dir)
			return lastErr
		}

		if err := run(); err != nil && !IsThresholdError(err) {
			return err
		}
		if os.Getenv("SPECLINT_WATCH_ONCE") == "true" {
			return lastErr
		}

		w, err := watch.New(watch.NewNameFilter(services.Config.Pattern), watchDebounce, func(paths []string) {
			fmt.Printf("\nChange detected at %s (%d file(s))\n", time.Now().Format("15:04:05"), len(paths))
			if err := run(); err != nil && !IsThresholdError(err) {
				printError(err)
			}
		}, services.Logger)
		if err != nil {
			return err
		}
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return err
		}

		fmt.Printf("\nWatching %s for changes... (Ctrl-C to stop)\n", dir)
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		mu.Lock()
		defer mu.Unlock()
		if errors.Is(lastErr, context.Canceled) {
			return nil
		}
		return lastErr
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Quiet period before re-linting after a change")
	RootCmd.AddCommand(watchCmd)
}
