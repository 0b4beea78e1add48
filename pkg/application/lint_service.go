package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/felixgeelhaar/speclint/pkg/domain/check"
	"github.com/felixgeelhaar/speclint/pkg/domain/report"
	"github.com/felixgeelhaar/speclint/pkg/domain/spec"
)

// DocumentRepository is the storage port the lint services read documents through.
type DocumentRepository interface {
	Discover(dir, pattern string) ([]string, error)
	Read(ctx context.Context, path string) ([]byte, error)
}

// LintService scores a single specification document.
type LintService struct {
	repo      DocumentRepository
	validator spec.Validator
	registry  *check.Registry
	logger    *slog.Logger
}

// NewLintService wires the aggregator. A nil validator disables schema validation.
func NewLintService(repo DocumentRepository, validator spec.Validator, registry *check.Registry, logger *slog.Logger) *LintService {
	if logger == nil {
		logger = slog.Default()
	}
	if registry == nil {
		registry = &check.Registry{}
	}
	return &LintService{
		repo:      repo,
		validator: validator,
		registry:  registry,
		logger:    logger,
	}
}

// LintFile reads and scores the document at path.
// A read failure is reported like a parse failure rather than returned.
func (s *LintService) LintFile(ctx context.Context, path string) *report.Report {
	name := filepath.Base(path)

	data, err := s.repo.Read(ctx, path)
	if err != nil {
		s.logger.Warn("document unreadable", slog.String("path", path), slog.Any("error", err))
		rep := parseFailure(name, err)
		rep.Path = path
		return rep
	}

	rep := s.Lint(name, data)
	rep.Path = path
	return rep
}

// Lint parses, validates and scores raw document bytes.
// Parse and schema failures short-circuit to a zero score with one message and one hint.
func (s *LintService) Lint(name string, data []byte) *report.Report {
	doc, err := spec.Parse(name, data)
	if err != nil {
		var perr *spec.ParseError
		if errors.As(err, &perr) {
			err = perr.Err
		}
		s.logger.Debug("document failed to parse", slog.String("document", name), slog.Any("error", err))
		return parseFailure(name, err)
	}

	if s.validator != nil {
		if err := s.validator.Validate(doc); err != nil {
			s.logger.Debug("document failed schema validation", slog.String("document", name), slog.Any("error", err))
			return schemaFailure(name, err)
		}
	}

	rep := &report.Report{
		Document: name,
		Messages: []string{},
		Hints:    []string{},
	}

	total := 0
	for _, o := range s.registry.Run(doc) {
		total += o.Points
		rep.Checks = append(rep.Checks, report.CheckScore{Check: o.CheckID, Points: o.Points, Max: o.MaxPoints})
		rep.Messages = append(rep.Messages, o.Messages...)
		rep.Hints = append(rep.Hints, o.Hints...)
	}
	rep.Score = clamp(total)

	s.logger.Debug("document scored", slog.String("document", name), slog.Int("score", rep.Score))
	return rep
}

func parseFailure(name string, err error) *report.Report {
	return &report.Report{
		Document: name,
		Failure:  report.FailureParse,
		Messages: []string{check.LevelError.Sprintf("Cannot parse YAML: %v", err)},
		Hints:    []string{fmt.Sprintf("Check YAML syntax in %s.", name)},
	}
}

func schemaFailure(name string, err error) *report.Report {
	detail := err.Error()
	schemaName := "the schema"

	var serr *spec.SchemaError
	if errors.As(err, &serr) {
		detail = serr.Detail
		if serr.Schema != "" {
			schemaName = serr.Schema
		}
	}

	return &report.Report{
		Document: name,
		Failure:  report.FailureSchema,
		Messages: []string{check.LevelError.Sprintf("Schema validation failed: %s", detail)},
		Hints:    []string{fmt.Sprintf("Fix structure per %s.", schemaName)},
	}
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > report.MaxScore {
		return report.MaxScore
	}
	return score
}
