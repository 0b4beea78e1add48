package application

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/speclint/pkg/domain/report"
)

var (
	// ErrDirectoryNotFound is returned when the batch target does not exist or is not a directory.
	ErrDirectoryNotFound = errors.New("directory not found")
	// ErrSchemaUnavailable is returned when the schema cannot be loaded before a run.
	ErrSchemaUnavailable = errors.New("schema unavailable")
)

// DefaultThreshold is the mean score a batch needs to pass.
const DefaultThreshold = 75.0

// BatchService lints every document in a directory and aggregates the scores.
type BatchService struct {
	repo      DocumentRepository
	lint      *LintService
	pattern   string
	threshold float64
	logger    *slog.Logger
}

// NewBatchService lints documents matching pattern and passes runs whose mean reaches threshold.
func NewBatchService(repo DocumentRepository, lint *LintService, pattern string, threshold float64, logger *slog.Logger) *BatchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchService{
		repo:      repo,
		lint:      lint,
		pattern:   pattern,
		threshold: threshold,
		logger:    logger,
	}
}

// Threshold is the pass mark applied to the mean score.
func (s *BatchService) Threshold() float64 {
	return s.threshold
}

// Run lints the documents in dir one after another.
// onReport, when set, is called with each report as soon as it is produced.
// Per-document failures are folded into that document's report; only a missing
// directory or a cancelled context aborts the run.
func (s *BatchService) Run(ctx context.Context, dir string, onReport func(*report.Report)) (*report.Summary, error) {
	paths, err := s.repo.Discover(dir, s.pattern)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("failed to discover documents: %w", err)
	}

	runID := uuid.NewString()
	s.logger.Debug("batch started", slog.String("run_id", runID), slog.String("dir", dir), slog.Int("documents", len(paths)))

	reports := make([]*report.Report, 0, len(paths))
	for _, path := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rep := s.lint.LintFile(ctx, path)
		reports = append(reports, rep)
		if onReport != nil {
			onReport(rep)
		}
	}

	summary := report.NewSummary(runID, dir, s.threshold, reports)
	s.logger.Debug("batch finished",
		slog.String("run_id", runID),
		slog.Float64("mean", summary.Mean),
		slog.Bool("passed", summary.Passed()),
	)
	return summary, nil
}
