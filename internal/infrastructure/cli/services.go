package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/speclint/internal/infrastructure/config"
	"github.com/felixgeelhaar/speclint/internal/infrastructure/wiring"
)

// loadConfig reads the config file and applies any flags set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, NewCLIError("invalid configuration", "Fix .speclint.yaml or pass --config", err)
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Root = rootDir
	}
	if flags.Changed("schema") {
		cfg.Schema = schemaPath
	}
	if flags.Changed("threshold") {
		cfg.Threshold = threshold
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, NewCLIError("invalid flags", "Check --threshold is within 0-100 and --format is text or json", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
}

func loadServices(cmd *cobra.Command) (*wiring.AppServices, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	services, err := wiring.BuildAppServices(cfg, newLogger(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to build services: %w", err)
	}
	return services, nil
}
