package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var (
	configPath  string
	rootDir     string
	schemaPath  string
	threshold   float64
	format      string
	verbose     bool
	metricsFile string
)

// RootCmd lints every *.spec.yaml document in the given directory.
var RootCmd = &cobra.Command{
	Use:     "speclint <dir>",
	Version: Version,
	Short:   "Score specification documents for completeness and traceability",
	Long: `speclint scores YAML specification documents.

Every document is validated against the schema, then checked for:
1. Structural completeness of the required sections
2. A traceable input -> domain -> output scope
3. Contract files and rule packs that exist
4. Scenarios that mention every declared input and output

The command exits non-zero when the mean score is below the threshold.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLint,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	err := RootCmd.ExecuteContext(context.Background())
	if err != nil {
		printError(err)
	}
	return err
}

// ExitCode returns the process status for an error returned by Execute.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) && cliErr.ExitCode != 0 {
		return cliErr.ExitCode
	}
	return 1
}

func printError(err error) {
	if IsThresholdError(err) {
		return
	}
	mapped := MapError(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", mapped)
	if cliErr, ok := mapped.(*CLIError); ok && cliErr.Hint != "" {
		fmt.Fprintf(os.Stderr, "Hint: %s\n", cliErr.Hint)
	}
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default .speclint.yaml, or $SPECLINT_CONFIG)")
	flags.StringVar(&rootDir, "root", "", "Repository root that contract and pack paths resolve against")
	flags.StringVar(&schemaPath, "schema", "", "Schema file, relative to the root")
	flags.Float64Var(&threshold, "threshold", 0, "Mean score required to pass (default 75)")
	flags.StringVarP(&format, "format", "f", "", "Output format (text, json)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&metricsFile, "metrics-file", "", "Write Prometheus metrics in text format to this file")

	RootCmd.SetVersionTemplate(fmt.Sprintf("speclint %s (commit %s, built %s)\n", Version, Commit, Date))
}
