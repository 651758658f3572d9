package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseMode verifies string-to-Mode conversion, including case
// normalization and rejection of unknown values.
func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mode
		wantErr bool
	}{
		{name: "check", input: "check", want: ModeCheck},
		{name: "fix", input: "fix", want: ModeFix},
		{name: "uppercase is normalized", input: "CHECK", want: ModeCheck},
		{name: "unknown mode rejected", input: "format", wantErr: true},
		{name: "empty string rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestFailurePolicyString verifies the human-readable policy names used
// in verbose output.
func TestFailurePolicyString(t *testing.T) {
	assert.Equal(t, "collect-all", CollectAll.String())
	assert.Equal(t, "fail-fast", FailFast.String())
	assert.Equal(t, "FailurePolicy(42)", FailurePolicy(42).String())
}

// TestCLIErrorUnwrap verifies that CLIError participates in Go error
// chains, so callers can reach the underlying cause with errors.Is/As.
func TestCLIErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := WrapCLIError(ExitGeneralError, "installing default configuration", cause)

	assert.Equal(t, "installing default configuration: disk full", err.Error())
	assert.True(t, errors.Is(err, cause))

	var cliErr *CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, ExitGeneralError, cliErr.Code)
}

// TestNewCLIErrorWithoutCause verifies the message-only form.
func TestNewCLIErrorWithoutCause(t *testing.T) {
	err := NewCLIError(ExitGeneralError, "something went wrong")
	assert.Equal(t, "something went wrong", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
