package errors

import (
	"errors"
	"fmt"
	"time"
)

// Error types for the fsq tool pipeline
type ErrorType string

const (
	// External binary errors
	ErrorTypeMissingBinary ErrorType = "missing_binary"
	ErrorTypeTimeout       ErrorType = "timeout"
	ErrorTypeExec          ErrorType = "exec"

	// Configuration errors
	ErrorTypeConfig ErrorType = "config"

	// Parameter errors
	ErrorTypeParams ErrorType = "params"
)

// ToolError represents a failure inside a tool invocation. Every ToolError is
// converted to a textual MCP result; it never surfaces as a protocol fault.
type ToolError struct {
	Type       ErrorType
	Operation  string
	Binary     string
	Underlying error
	Timestamp  time.Time
}

// NewToolError creates a new tool error with context
func NewToolError(errType ErrorType, op string, err error) *ToolError {
	return &ToolError{
		Type:       errType,
		Operation:  op,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// WithBinary records the external binary involved in the failure
func (e *ToolError) WithBinary(binary string) *ToolError {
	e.Binary = binary
	return e
}

// Error implements the error interface
func (e *ToolError) Error() string {
	if e.Binary != "" {
		return fmt.Sprintf("%s %s failed (binary %s): %v", e.Type, e.Operation, e.Binary, e.Underlying)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Type, e.Operation, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *ToolError) Unwrap() error {
	return e.Underlying
}

// IsTimeout reports whether err is a tool timeout
func IsTimeout(err error) bool {
	var te *ToolError
	return errors.As(err, &te) && te.Type == ErrorTypeTimeout
}

// IsMissingBinary reports whether err is caused by an absent external binary
func IsMissingBinary(err error) bool {
	var te *ToolError
	return errors.As(err, &te) && te.Type == ErrorTypeMissingBinary
}

// ConfigError represents a configuration problem
type ConfigError struct {
	Type       ErrorType
	Path       string
	Field      string
	Underlying error
}

// NewConfigError creates a new configuration error
func NewConfigError(path, field string, err error) *ConfigError {
	return &ConfigError{
		Type:       ErrorTypeConfig,
		Path:       path,
		Field:      field,
		Underlying: err,
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config %s: field %s: %v", e.Path, e.Field, e.Underlying)
	}
	return fmt.Sprintf("config %s: %v", e.Path, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}
