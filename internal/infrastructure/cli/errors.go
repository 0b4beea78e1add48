package cli

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/speclint/pkg/application"
	"github.com/felixgeelhaar/speclint/pkg/domain/check/rules"
)

// CLIError wraps domain errors with user-facing messages and actionable hints.
type CLIError struct {
	Message  string
	Hint     string
	Err      error
	ExitCode int
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with a default exit code of 1.
func NewCLIError(msg, hint string, err error) *CLIError {
	return &CLIError{
		Message:  msg,
		Hint:     hint,
		Err:      err,
		ExitCode: 1,
	}
}

// errBelowThreshold marks a completed run whose score did not pass.
// The report has already been printed, so it is not shown again.
var errBelowThreshold = errors.New("score below threshold")

func thresholdError(score, threshold float64) error {
	return &CLIError{
		Message:  fmt.Sprintf("score %.1f is below the threshold %g", score, threshold),
		Err:      errBelowThreshold,
		ExitCode: 1,
	}
}

// IsThresholdError reports whether err only signals a failing score.
func IsThresholdError(err error) bool {
	return errors.Is(err, errBelowThreshold)
}

// MapError converts known domain errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	switch {
	case errors.Is(err, application.ErrDirectoryNotFound):
		return NewCLIError("directory not found", "Pass an existing directory containing *.spec.yaml documents", err)
	case errors.Is(err, application.ErrSchemaUnavailable):
		return NewCLIError("schema could not be loaded", "Check --schema and --root, or run 'speclint doctor'", err)
	case errors.Is(err, rules.ErrUnknownCheck):
		return NewCLIError("unknown check in config", fmt.Sprintf("Valid checks are %v", rules.Names), err)
	}

	return err
}
