package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunSuccess verifies that a zero exit produces no error.
func TestRunSuccess(t *testing.T) {
	assert.NoError(t, run(context.Background(), "true"))
}

// TestRunNonZeroExit verifies that a non-zero exit is reported as a
// ToolError carrying the tool's exit code.
func TestRunNonZeroExit(t *testing.T) {
	err := run(context.Background(), "false")
	require.Error(t, err)

	var toolErr *ToolError
	require.True(t, errors.As(err, &toolErr), "expected a ToolError, got: %v", err)
	assert.Equal(t, "false", toolErr.Tool)
	assert.Equal(t, 1, toolErr.ExitCode)
	assert.Equal(t, "false exited with status 1", toolErr.Error())
}

// TestRunMissingBinary verifies that a tool that cannot be started at all
// is an ordinary error, not a ToolError: there is no exit code to
// propagate.
func TestRunMissingBinary(t *testing.T) {
	err := run(context.Background(), "fourmat-no-such-tool")
	require.Error(t, err)

	var toolErr *ToolError
	assert.False(t, errors.As(err, &toolErr), "a missing binary must not look like a tool failure")
}

// TestRunCanceledContext verifies that an already-canceled context
// prevents the subprocess from running.
func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, "true")
	require.Error(t, err)
}
