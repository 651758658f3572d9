package tools

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ToolError reports a tool subprocess that exited non-zero. The tool has
// already written its diagnostics to the inherited stdout/stderr; the
// error only carries what the command layer needs for its exit-code
// policy.
type ToolError struct {
	// Tool is the binary name of the failing tool.
	Tool string

	// ExitCode is the tool's exit status.
	ExitCode int

	// Err is the underlying exec error.
	Err error
}

// Error satisfies the error interface.
func (e *ToolError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Tool, e.ExitCode)
}

// Unwrap returns the underlying exec error.
func (e *ToolError) Unwrap() error {
	return e.Err
}

// run executes a tool subprocess and interprets its exit code. This is
// the only place in fourmat that spawns a formatting/linting tool.
//
// stdout and stderr are inherited so tool output reaches the user
// unmodified. A non-zero exit is returned as a *ToolError carrying the
// tool's exit code; any other failure (binary not found, context
// canceled) is returned as an ordinary error.
func run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ToolError{Tool: name, ExitCode: exitErr.ExitCode(), Err: err}
	}
	return fmt.Errorf("running %s: %w", name, err)
}
