// Package model defines the shared types for the fourmat CLI: run modes,
// failure policies, exit codes, and the error type that carries an exit
// code across package boundaries.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects whether the tool runners report violations or rewrite
// files in place.
type Mode string

const (
	// ModeCheck reports non-conformant files without mutating anything.
	ModeCheck Mode = "check"

	// ModeFix rewrites files in place where a tool supports it.
	ModeFix Mode = "fix"
)

// String returns the string representation of Mode.
func (m Mode) String() string {
	return string(m)
}

// IsValid checks whether the Mode value is one of the predefined modes.
func (m Mode) IsValid() bool {
	switch m {
	case ModeCheck, ModeFix:
		return true
	default:
		return false
	}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string does not match any valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(s))
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid mode: %q (valid: check, fix)", s)
	}
	return mode, nil
}

// FailurePolicy selects how the command layer reacts to a tool failure
// while sequencing the runners.
//
// The two commands deliberately differ: check aggregates every failure so
// the user sees all violations in one run, while fix stops at the first
// failure because later fixes may be unsafe to apply over an unresolved
// earlier issue.
type FailurePolicy int

const (
	// CollectAll runs every tool, recording failures, and reports
	// non-conformance at the end. Used by the check command.
	CollectAll FailurePolicy = iota

	// FailFast stops at the first tool failure and propagates it.
	// Used by the fix command.
	FailFast
)

// String returns a human-readable name for the policy.
func (p FailurePolicy) String() string {
	switch p {
	case CollectAll:
		return "collect-all"
	case FailFast:
		return "fail-fast"
	default:
		return fmt.Sprintf("FailurePolicy(%d)", int(p))
	}
}

// ErrNotConformant signals that at least one tool reported violations
// during a check run. The tools have already written their diagnostics to
// stdout/stderr, so the CLI exits with status 1 without further output.
var ErrNotConformant = errors.New("style violations found")

// ExitCode defines the CLI exit codes. Fix-mode tool failures bypass
// these constants and propagate the failing tool's own exit code instead.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred, or that
	// a check run found violations.
	ExitGeneralError ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
