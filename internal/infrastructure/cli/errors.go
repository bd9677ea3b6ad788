package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/felixgeelhaar/e2elint/internal/infrastructure/config"
)

// ErrScoreBelowThreshold is returned when --min-score is not met.
var ErrScoreBelowThreshold = errors.New("score below threshold")

// CLIError wraps errors with user-facing messages and actionable hints.
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

// MapError converts known errors into CLIErrors with actionable hints.
// Unmapped errors are returned as-is.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return err
	}

	switch {
	case errors.Is(err, config.ErrInvalidConfig):
		return &CLIError{
			Message:  "invalid configuration",
			Hint:     fmt.Sprintf("Check %s: allowed keys are include_js, exclude, workers, output, min_score", config.FileName),
			Err:      err,
			ExitCode: 2,
		}
	case errors.Is(err, ErrScoreBelowThreshold):
		return NewCLIError("quality gate failed", "Fix the reported HIGH issues first, each costs 3 points", err)
	case errors.Is(err, context.Canceled):
		return &CLIError{Message: "review interrupted", Err: err, ExitCode: 130}
	}

	return err
}

// ExitCode returns the process exit code for err.
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
