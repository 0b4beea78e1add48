package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/speclint/internal/infrastructure/config"
	"github.com/felixgeelhaar/speclint/internal/infrastructure/wiring"
	"github.com/felixgeelhaar/speclint/pkg/domain/report"
	"github.com/felixgeelhaar/speclint/pkg/infrastructure/metrics"
)

func runLint(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_ = cmd.Usage()
		return NewCLIError("a directory argument is required", "Usage: speclint <dir>", nil)
	}

	services, err := loadServices(cmd)
	if err != nil {
		return err
	}
	return lintDir(cmd.Context(), os.Stdout, services, args[0])
}

// lintDir runs one batch over dir and prints it in the configured format.
func lintDir(ctx context.Context, w io.Writer, services *wiring.AppServices, dir string) error {
	text := services.Config.Format == config.FormatText
	if text {
		fmt.Fprintf(w, "🔍 Running Spec Linter with feedback on %s...\n", dir)
	}

	summary, err := services.Batch.Run(ctx, dir, func(rep *report.Report) {
		if text {
			printReport(w, rep)
		}
	})
	if err != nil {
		return err
	}

	return finish(services.Config, summary, func() {
		if text {
			printSummary(w, summary)
			return
		}
		_ = printJSON(w, summary)
	})
}

// finish prints the result, exports metrics and maps the verdict to an error.
func finish(cfg *config.Config, summary *report.Summary, render func()) error {
	render()

	if metricsFile != "" {
		if err := metrics.WriteTextfile(metricsFile, summary); err != nil {
			return NewCLIError("failed to write metrics", "Check that --metrics-file points to a writable path", err)
		}
	}

	if !summary.Passed() {
		return thresholdError(summary.Mean, cfg.Threshold)
	}
	return nil
}

var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Lint a single specification document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServices(cmd)
		if err != nil {
			return err
		}

		path := args[0]
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			return NewCLIError(fmt.Sprintf("document %s not found", path), "Pass the path of a *.spec.yaml file", err)
		}

		rep := services.Lint.LintFile(cmd.Context(), path)
		summary := report.NewSummary(uuid.NewString(), filepath.Dir(path), services.Config.Threshold, []*report.Report{rep})

		w := os.Stdout
		return finish(services.Config, summary, func() {
			if services.Config.Format == config.FormatJSON {
				_ = printJSON(w, rep)
				return
			}
			printReport(w, rep)
		})
	},
}

func init() {
	RootCmd.AddCommand(fileCmd)
}
