package wiring

import (
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/speclint/internal/infrastructure/config"
	"github.com/felixgeelhaar/speclint/pkg/application"
	"github.com/felixgeelhaar/speclint/pkg/domain/check/rules"
	"github.com/felixgeelhaar/speclint/pkg/infrastructure/schema"
	"github.com/felixgeelhaar/speclint/pkg/storage"
)

// AppServices exposes the lint services wired together for a repository root.
type AppServices struct {
	Config *config.Config
	Repo   *storage.FilesystemRepository
	Schema *schema.Validator
	Lint   *application.LintService
	Batch  *application.BatchService
	Logger *slog.Logger
}

// BuildAppServices loads the schema once and builds the services for cfg.
// A schema that cannot be loaded is fatal and wraps application.ErrSchemaUnavailable.
func BuildAppServices(cfg *config.Config, logger *slog.Logger) (*AppServices, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	repo := storage.NewFilesystemRepository(cfg.Root, logger)

	validator, err := schema.Load(cfg.SchemaPath())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", application.ErrSchemaUnavailable, err)
	}

	registry, err := rules.NewRegistry(cfg.Checks, repo, cfg.PacksDir)
	if err != nil {
		return nil, err
	}

	lint := application.NewLintService(repo, validator, registry, logger)
	logger.Debug("services ready",
		slog.String("root", cfg.Root),
		slog.String("schema", validator.Name()),
		slog.Int("checks", len(registry.Checks)),
	)

	return &AppServices{
		Config: cfg,
		Repo:   repo,
		Schema: validator,
		Lint:   lint,
		Batch:  application.NewBatchService(repo, lint, cfg.Pattern, cfg.Threshold, logger),
		Logger: logger,
	}, nil
}
