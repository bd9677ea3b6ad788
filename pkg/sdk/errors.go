package sdk

import (
	"errors"
	"fmt"
)

var (
	// ErrNoContent is returned when a tool result carries nothing to decode.
	ErrNoContent = errors.New("e2elint: empty tool result")

	// ErrIncompatibleSchema is returned by Compatible when the server's
	// rules schema has a different major version than this package reads.
	ErrIncompatibleSchema = errors.New("e2elint: incompatible rules schema")
)

// ToolError carries the message of a tool that ran and failed, for example
// a review of a path that is a directory or cannot be read.
type ToolError struct {
	Tool    string
	Message string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("e2elint: tool %s: %s", e.Tool, e.Message)
}

// IsToolError reports whether err wraps a *ToolError.
func IsToolError(err error) bool {
	var te *ToolError
	return errors.As(err, &te)
}
